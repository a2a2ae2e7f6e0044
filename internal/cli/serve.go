package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amterp/swatch/internal/api"
	"github.com/amterp/swatch/internal/log"
	"github.com/amterp/ra"
	"go.uber.org/zap"
)

func registerServe(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("serve")
	cmd.SetDescription("Serve palettes and remote picker sessions over HTTP and websockets")

	ctx.ServePort, _ = ra.NewInt("port").
		SetOptional(true).
		SetDefault(3000).
		SetShort("p").
		SetFlagOnly(true).
		SetUsage("Port to listen on (will try incrementally if in use)").
		Register(cmd)

	ctx.ServeLocale, _ = ra.NewString("locale").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Default locale for sessions that don't send one").
		Register(cmd)

	ctx.ServeUsed, _ = parent.RegisterCmd(cmd)
}

func runServe(port int, locale string) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	apiCtx, err := api.BuildContext(app.Paths.Root(), app.GlobalConfig, app.RightToLeft(false, locale))
	if err != nil {
		Fatal(err)
	}

	// Find an available port starting from the requested one
	actualPort := findAvailablePort(port)
	server := api.NewServer(apiCtx, actualPort)

	url := fmt.Sprintf("http://localhost:%d/api/v1", actualPort)
	fmt.Printf("swatch server running at %s\n", RenderURL(url))
	fmt.Println(RenderMuted("Palettes: " + app.PaletteStore.Path()))
	fmt.Println("Press Ctrl+C to stop")

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			Fatal(err)
		}
	case <-sigCtx.Done():
		log.Info("shutting down", zap.String("addr", server.Addr()))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			Fatal(err)
		}
	}
}

// findAvailablePort tries ports starting from startPort until it finds one that's available.
func findAvailablePort(startPort int) int {
	maxAttempts := 100
	for i := 0; i < maxAttempts; i++ {
		port := startPort + i
		if isPortAvailable(port) {
			return port
		}
	}
	// If we couldn't find a port after maxAttempts, return the original and let it fail naturally
	return startPort
}

// isPortAvailable checks if a port is available by attempting to listen on it.
func isPortAvailable(port int) bool {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return false
	}
	listener.Close()
	return true
}

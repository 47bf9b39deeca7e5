package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/natevvv/campus-navigation/pkg/server/openapi_server"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the routing API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on, overrides the configuration")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	router, err := newRouter()
	if err != nil {
		return err
	}
	port := cfg.Server.Port
	if servePort != 0 {
		port = servePort
	}

	controller := openapi_server.NewDefaultApiController(openapi_server.NewDefaultApiService(router))
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: openapi_server.NewRouter(controller),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdown)
	}()

	log.Printf("Server started on port %v\n", port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Printf("Server stopped\n")
	return nil
}

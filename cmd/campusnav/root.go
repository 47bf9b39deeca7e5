package main

import (
	"fmt"
	"log"
	"time"

	"github.com/natevvv/campus-navigation/internal/config"
	"github.com/natevvv/campus-navigation/pkg/campus"
	"github.com/natevvv/campus-navigation/pkg/routing"
	"github.com/spf13/cobra"
)

var (
	configFile   string
	registryFile string
	cfg          *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "campusnav",
	Short:         "Campus navigation",
	Long:          "Route between the buildings of a campus and describe how to reach a room inside them",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
		if registryFile != "" {
			cfg.Registry = registryFile
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file (default campusnav.yaml)")
	rootCmd.PersistentFlags().StringVarP(&registryFile, "registry", "r", "", "Point registry (json or yaml), overrides the configuration")
}

func loadSnapshot() (*campus.Snapshot, error) {
	start := time.Now()
	snapshot, err := campus.LoadSnapshotFile(cfg.Registry)
	if err != nil {
		return nil, fmt.Errorf("could not load %v: %w", cfg.Registry, err)
	}
	log.Printf("[TIME-Import] = %s, %v points from %v\n", time.Since(start), snapshot.Len(), cfg.Registry)
	return snapshot, nil
}

func newRouter() (*routing.Router, error) {
	snapshot, err := loadSnapshot()
	if err != nil {
		return nil, err
	}
	return routing.NewRouter(snapshot, cfg.RouterConfig()), nil
}

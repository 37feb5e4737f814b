package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/radoslav1992/data-visualization-app/dataset"
	"github.com/radoslav1992/data-visualization-app/server"
)

// ============================================================================
// DATAVIZ CLI — serve the app, or inspect a file from the shell
// ============================================================================

const version = "0.1.0"

func main() {
	root := &cobra.Command{
		Use:     "dataviz",
		Short:   "Interactive chart builder for tabular files",
		Version: version,
	}
	root.AddCommand(serveCmd(), inspectCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the visualization web app",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Optional .env for local development; absence is fine.
			_ = godotenv.Load()

			if addr == "" {
				if port := os.Getenv("PORT"); port != "" {
					addr = ":" + port
				} else {
					addr = ":8080"
				}
			}

			srv := server.New()
			log.Printf("🚀 dataviz listening on http://localhost%s", addr)
			return http.ListenAndServe(addr, srv.Router())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080, or :$PORT)")
	return cmd
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the inferred column types of a CSV/XLSX file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			ds, err := dataset.Load(args[0], f)
			if err != nil {
				return err
			}

			fmt.Printf("%s: %d rows\n\n", ds.Name, ds.Rows())
			fmt.Printf("%-24s %-8s %s\n", "COLUMN", "TYPE", "MISSING")
			for _, c := range ds.Columns() {
				fmt.Printf("%-24s %-8s %d\n", c.Name, c.Type, c.Missing)
			}
			numeric := ds.NumericColumns()
			fmt.Printf("\n%d numeric column(s) eligible for heatmap correlation\n", len(numeric))
			return nil
		},
	}
}

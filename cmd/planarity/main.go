// Command planarity is the CLI entry point (spec.md §6): read a graph
// from ADJLIST or ADJMATRIX, run the embedder, report the result, and
// optionally print the Kuratowski witness.
//
// Exit codes: 0 = planar, 1 = non-planar, 2 = usage, read, parse or
// verification error. The spec's original 0/1/-1 scheme is shifted to
// 0/1/2 here; every error cobra's Execute returns, its own usage errors
// included, exits with 2.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/planarity/dfs"
	"github.com/katalvlaran/planarity/embedder"
	"github.com/katalvlaran/planarity/fileio"
	"github.com/katalvlaran/planarity/graph"
	"github.com/katalvlaran/planarity/integrity"
)

var (
	format      string
	showWitness bool
	verify      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

var rootCmd = &cobra.Command{
	Use:   "planarity [file]",
	Short: "Test planarity of a graph via the Boyer-Myrvold edge-addition method",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.Flags().StringVar(&format, "format", "adjlist", `input format: "adjlist" or "adjmatrix"`)
	rootCmd.Flags().BoolVar(&showWitness, "witness", false, "print the Kuratowski witness when non-planar")
	rootCmd.Flags().BoolVar(&verify, "verify", false, "run the integrity checker against a successful embedding")
}

func runCheck(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	var g *fileGraph
	switch format {
	case "adjlist":
		parsed, labels, err := fileio.ReadAdjList(string(data))
		if err != nil {
			return err
		}
		g = &fileGraph{parsed, labels}
	case "adjmatrix":
		parsed, err := fileio.ReadAdjMatrix(string(data))
		if err != nil {
			return err
		}
		g = &fileGraph{parsed, nil}
	default:
		return fmt.Errorf("unknown --format %q", format)
	}

	if err := dfs.Preprocess(g.g); err != nil {
		return err
	}
	res := embedder.Embed(g.g)

	if res.Code == embedder.OK {
		fmt.Println("planar")
		if verify {
			report := integrity.Check(g.g)
			if !report.OK() {
				for _, issue := range report.Issues {
					fmt.Fprintln(os.Stderr, issue)
				}
				os.Exit(2)
			}
		}
		return nil
	}

	fmt.Println("non-planar")
	if showWitness && res.Kuratowski != nil {
		fmt.Print(fileio.WriteAdjMatrix(res.Kuratowski))
	}
	os.Exit(1)
	return nil
}

type fileGraph struct {
	g      *graph.Graph
	labels []string
}

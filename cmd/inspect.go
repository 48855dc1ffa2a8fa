package cmd

import (
	"flag"
	"fmt"
	"os"

	"vdfmint/operations"
)

// InspectCommand handles the inspect subcommand.
func InspectCommand(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)

	var (
		input = fs.String("input", "", "Pyx envelope file to inspect (required)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s inspect --input FILE\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nInspect a Pyx envelope and display its metadata, without verifying it\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s inspect --input pyx.json\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		fs.Usage()
		return fmt.Errorf("--input is required")
	}

	result, err := operations.Inspect(operations.InspectOptions{InputFile: *input})
	if err != nil {
		return err
	}

	printInspectResult(result)
	return nil
}

func printInspectResult(r *operations.InspectResult) {
	fmt.Printf("=== Pyx metadata ===\n\n")
	fmt.Printf("File:           %s (%d bytes)\n", r.InputFile, r.FileSize)
	fmt.Printf("pyxId:          %s\n", r.PyxIDHex)
	fmt.Printf("minterId:       %s\n", r.MinterIDHex)
	fmt.Printf("challenge:      %s\n", r.ChallengeHex)
	fmt.Printf("iterations:     %d\n", r.Iterations)
	fmt.Printf("\n")
	fmt.Printf("modulus N:      %d bits\n", r.ModulusBitLen)
	fmt.Printf("output y:       %d bits\n", r.OutputBitLen)
	fmt.Printf("proof pi:       %d bits\n", r.ProofBitLen)
	fmt.Printf("\n")
	fmt.Printf("estimated time: %s\n", r.EstimatedTime)
	fmt.Printf("\nUse '%s verify --input %s' to check the proof.\n", os.Args[0], r.InputFile)
}

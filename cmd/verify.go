package cmd

import (
	"flag"
	"fmt"
	"os"

	"vdfmint/operations"
)

// VerifyCommand handles the verify subcommand.
func VerifyCommand(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)

	var (
		input = fs.String("input", "", "Pyx envelope file to verify (required)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s verify --input FILE\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nCheck a Pyx envelope's Wesolowski identity\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s verify --input pyx.json\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		fs.Usage()
		return fmt.Errorf("--input is required")
	}

	result, err := operations.Verify(operations.VerifyOptions{InputFile: *input})
	if err != nil {
		return err
	}

	fmt.Printf("pyxId:      %s\n", result.PyxIDHex)
	fmt.Printf("iterations: %d\n", result.Iterations)
	fmt.Printf("elapsed:    %v\n", result.Elapsed)
	if result.Valid {
		fmt.Printf("result:     VALID\n")
		return nil
	}
	fmt.Printf("result:     INVALID\n")
	os.Exit(1)
	return nil
}

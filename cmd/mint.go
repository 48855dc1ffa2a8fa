package cmd

import (
	"flag"
	"fmt"
	"os"

	"vdfmint/operations"
)

// MintCommand handles the mint subcommand.
func MintCommand(args []string) error {
	fs := flag.NewFlagSet("mint", flag.ExitOnError)

	var (
		minterID   = fs.String("minter-id", "", "32-byte minter identity, hex-encoded (required)")
		challenge  = fs.String("challenge", "", "32-byte challenge, hex-encoded (required)")
		iterations = fs.Uint64("iterations", 0, "number of sequential squarings T (required, >= 1)")
		output     = fs.String("output", "", "file to write the resulting Pyx envelope to (required)")
		quiet      = fs.Bool("quiet", false, "suppress the progress bar")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s mint --minter-id HEX --challenge HEX --iterations T --output FILE\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nRun the VDF pipeline and write the resulting Pyx as a JSON envelope\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s mint --minter-id %s --challenge %s --iterations 50000 --output pyx.json\n",
			os.Args[0], "0101...01", "0202...02")
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *minterID == "" || *challenge == "" || *output == "" {
		fs.Usage()
		return fmt.Errorf("--minter-id, --challenge, and --output are required")
	}
	if *iterations < 1 {
		fs.Usage()
		return fmt.Errorf("--iterations must be >= 1")
	}

	result, err := operations.Mint(operations.MintOptions{
		MinterIDHex:  *minterID,
		ChallengeHex: *challenge,
		Iterations:   *iterations,
		OutputFile:   *output,
		ShowProgress: !*quiet,
	})
	if err != nil {
		return err
	}

	fmt.Printf("pyxId:   %s\n", result.PyxIDHex)
	fmt.Printf("elapsed: %v\n", result.Elapsed)
	fmt.Printf("written: %s\n", *output)
	return nil
}

package main

import (
	"fmt"
	"os"

	"vdfmint/cmd"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "mint":
		err = cmd.MintCommand(args)
	case "verify":
		err = cmd.VerifyCommand(args)
	case "inspect":
		err = cmd.InspectCommand(args)
	case "bench":
		err = cmd.BenchCommand(args)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf("vdfmint - Wesolowski verifiable delay function over RSA-2048\n\n")
	fmt.Printf("Usage:\n")
	fmt.Printf("  %s <command> [options]\n\n", os.Args[0])
	fmt.Printf("Commands:\n")
	fmt.Printf("  mint      Run the VDF pipeline and emit a Pyx\n")
	fmt.Printf("  verify    Check a Pyx's Wesolowski identity\n")
	fmt.Printf("  inspect   Show a Pyx's metadata without verifying it\n")
	fmt.Printf("  bench     Benchmark this machine's squaring rate\n")
	fmt.Printf("  help      Show this help message\n\n")
	fmt.Printf("Examples:\n")
	fmt.Printf("  %s mint --minter-id 0101...01 --challenge 0202...02 --iterations 50000 --output pyx.json\n", os.Args[0])
	fmt.Printf("  %s verify --input pyx.json\n", os.Args[0])
	fmt.Printf("  %s inspect --input pyx.json\n", os.Args[0])
	fmt.Printf("  %s bench\n", os.Args[0])
	fmt.Printf("\nFor detailed help on a command, use:\n")
	fmt.Printf("  %s <command> --help\n", os.Args[0])
}

// StrongID CLI - Command-line tool for TypeID-compatible identifiers
//
// Usage:
//   strongid new [flags]               Generate UUID-backed identifiers
//   strongid parse <id> [flags]        Parse and inspect an identifier
//   strongid encode <value> [flags]    Encode a raw value as an identifier
//   strongid decode <id> [flags]       Decode an identifier to its raw value
//
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/sxyafiq/strongid"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	switch command {
	case "new", "n":
		cmdNew(os.Args[2:])
	case "parse", "p":
		cmdParse(os.Args[2:])
	case "encode", "enc", "e":
		cmdEncode(os.Args[2:])
	case "decode", "dec", "d":
		cmdDecode(os.Args[2:])
	case "version", "--version", "-v":
		fmt.Printf("strongid CLI version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `StrongID CLI - strongly typed, sortable, TypeID-compatible identifiers

Usage:
  strongid <command> [flags]

Commands:
  new, n                Generate UUID-backed identifiers
  parse, p              Parse and inspect an identifier
  encode, enc, e        Encode a raw value as an identifier
  decode, dec, d        Decode an identifier back to its raw value
  version               Show version information
  help                  Show this help message

Examples:
  # Generate a user ID (UUIDv7, sortable by creation time)
  strongid new --prefix user

  # Generate 10 bare v4 IDs
  strongid new --count 10 --uuid-version 4

  # Inspect an identifier
  strongid parse user_01h536gfwffx2rm6pa0xg63337

  # Encode the number 301 as a prefixed uint16 identifier
  strongid encode 301 --type u16 --prefix invoice

  # Decode a bare uint64 identifier
  strongid decode 000000000009d --type u64

For detailed help on a command:
  strongid <command> --help

`)
}

// suffixWidths maps --type names to byte widths. uuid shares the 16-byte
// width of u128 but prints as a hyphenated UUID.
var suffixWidths = map[string]int{
	"u8":   1,
	"u16":  2,
	"u32":  4,
	"u64":  8,
	"u128": 16,
	"uuid": 16,
}

func widthFor(typeName string) int {
	w, ok := suffixWidths[typeName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown type %q (want u8, u16, u32, u64, u128 or uuid)\n", typeName)
		os.Exit(1)
	}
	return w
}

// ============================================================================
// New Command
// ============================================================================

func cmdNew(args []string) {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	prefix := fs.String("prefix", "", "Prefix for the generated IDs (empty for bare IDs)")
	count := fs.Int("count", 1, "Number of IDs to generate")
	uuidVersion := fs.Int("uuid-version", 7, "UUID version: 4 (random) or 7 (time-ordered)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: strongid new [flags]

Generate one or more UUID-backed identifiers.

Flags:
  --prefix NAME       Prefix (lowercase letters, '_' allowed inside; default: none)
  --count N           Number of IDs to generate (default: 1)
  --uuid-version V    4 for random, 7 for time-ordered (default: 7)

Examples:
  strongid new --prefix user
  strongid new --count 100 --prefix order
  strongid new --uuid-version 4
`)
	}

	fs.Parse(args)

	if *uuidVersion != 4 && *uuidVersion != 7 {
		fmt.Fprintf(os.Stderr, "Error: unsupported UUID version %d (want 4 or 7)\n", *uuidVersion)
		os.Exit(1)
	}

	for i := 0; i < *count; i++ {
		var u strongid.UUID
		var err error
		if *uuidVersion == 4 {
			u, err = strongid.NewUUIDv4()
		} else {
			u, err = strongid.NewUUIDv7()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating UUID: %v\n", err)
			os.Exit(1)
		}

		if *prefix == "" {
			fmt.Println(strongid.NewPlain(u))
			continue
		}
		id, err := strongid.NewDelimited(*prefix, u)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(id)
	}
}

// ============================================================================
// Parse Command
// ============================================================================

func cmdParse(args []string) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	typeName := fs.String("type", "uuid", "Suffix type: u8, u16, u32, u64, u128, uuid")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: strongid parse <id> [flags]

Parse an identifier and print its components.

Flags:
  --type NAME    Suffix type: u8, u16, u32, u64, u128, uuid (default: uuid)

Examples:
  strongid parse user_01h536gfwffx2rm6pa0xg63337
  strongid parse invoice_009d --type u16
`)
	}

	input, rest := firstArg(fs, args)
	fs.Parse(rest)

	switch *typeName {
	case "u8":
		printParsed(parseOrDie[strongid.Uint8](input))
	case "u16":
		printParsed(parseOrDie[strongid.Uint16](input))
	case "u32":
		printParsed(parseOrDie[strongid.Uint32](input))
	case "u64":
		printParsed(parseOrDie[strongid.Uint64](input))
	case "u128":
		id := parseOrDie[strongid.Uint128](input)
		printParsed(id)
		v := id.Suffix()
		fmt.Printf("  Raw (hex):  %016x%016x\n", v.Hi, v.Lo)
	case "uuid":
		id := parseOrDie[strongid.UUID](input)
		printParsed(id)
		fmt.Printf("  UUID:       %s\n", id.Suffix())
	default:
		widthFor(*typeName)
	}
}

func parseOrDie[T strongid.Suffix[T]](input string) strongid.ID[T] {
	id, err := strongid.ParseDelimited[T](input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unable to parse %q: %v\n", input, err)
		os.Exit(1)
	}
	return id
}

func printParsed[T strongid.Suffix[T]](id strongid.ID[T]) {
	fmt.Printf("Identifier: %s\n", id)
	fmt.Printf("\n")
	fmt.Printf("Components:\n")
	if id.HasPrefix() {
		fmt.Printf("  Prefix:     %s\n", id.Prefix())
	} else {
		fmt.Printf("  Prefix:     (none)\n")
	}
	fmt.Printf("  Suffix:     %s\n", id.Suffix().Encode())
}

// ============================================================================
// Encode Command
// ============================================================================

func cmdEncode(args []string) {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	typeName := fs.String("type", "u64", "Suffix type: u8, u16, u32, u64")
	prefix := fs.String("prefix", "", "Prefix for the identifier (default: none)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: strongid encode <value> [flags]

Encode a raw unsigned integer as an identifier.

Flags:
  --type NAME      Suffix type: u8, u16, u32, u64 (default: u64)
  --prefix NAME    Prefix (default: none)

Examples:
  strongid encode 301 --type u16
  strongid encode 301 --type u16 --prefix invoice
`)
	}

	input, rest := firstArg(fs, args)
	fs.Parse(rest)

	width := widthFor(*typeName)
	if width > 8 {
		fmt.Fprintf(os.Stderr, "Error: encode takes integer types only (u8, u16, u32, u64)\n")
		os.Exit(1)
	}

	raw, err := strconv.ParseUint(input, 10, width*8)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid %s value %q: %v\n", *typeName, input, err)
		os.Exit(1)
	}

	switch *typeName {
	case "u8":
		fmt.Println(buildOrDie(*prefix, strongid.Uint8(raw)))
	case "u16":
		fmt.Println(buildOrDie(*prefix, strongid.Uint16(raw)))
	case "u32":
		fmt.Println(buildOrDie(*prefix, strongid.Uint32(raw)))
	case "u64":
		fmt.Println(buildOrDie(*prefix, strongid.Uint64(raw)))
	}
}

func buildOrDie[T strongid.Suffix[T]](prefix string, v T) strongid.ID[T] {
	if prefix == "" {
		return strongid.NewPlain(v)
	}
	id, err := strongid.NewDelimited(prefix, v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return id
}

// ============================================================================
// Decode Command
// ============================================================================

func cmdDecode(args []string) {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	typeName := fs.String("type", "u64", "Suffix type: u8, u16, u32, u64, u128, uuid")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: strongid decode <id> [flags]

Decode an identifier and print the raw suffix value.

Flags:
  --type NAME    Suffix type: u8, u16, u32, u64, u128, uuid (default: u64)

Examples:
  strongid decode invoice_009d --type u16
  strongid decode 01h536gfwffx2rm6pa0xg63337 --type uuid
`)
	}

	input, rest := firstArg(fs, args)
	fs.Parse(rest)

	switch *typeName {
	case "u8":
		fmt.Println(uint64(parseOrDie[strongid.Uint8](input).Suffix()))
	case "u16":
		fmt.Println(uint64(parseOrDie[strongid.Uint16](input).Suffix()))
	case "u32":
		fmt.Println(uint64(parseOrDie[strongid.Uint32](input).Suffix()))
	case "u64":
		fmt.Println(uint64(parseOrDie[strongid.Uint64](input).Suffix()))
	case "u128":
		v := parseOrDie[strongid.Uint128](input).Suffix()
		fmt.Printf("%016x%016x\n", v.Hi, v.Lo)
	case "uuid":
		fmt.Println(parseOrDie[strongid.UUID](input).Suffix())
	default:
		widthFor(*typeName)
	}
}

// firstArg pulls the positional argument off the front of args, printing
// usage and exiting when it is absent.
func firstArg(fs *flag.FlagSet, args []string) (string, []string) {
	if len(args) < 1 || len(args[0]) == 0 || args[0][0] == '-' {
		fs.Usage()
		os.Exit(1)
	}
	return args[0], args[1:]
}

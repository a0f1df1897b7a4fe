package main

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/nfgallimore/rsa/keys"
	"github.com/nfgallimore/rsa/pkcs1"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "key":
		return cmdKey(args[1:], out, errOut)
	case "encrypt":
		return cmdPrimitive(args[1:], out, errOut, "encrypt")
	case "decrypt":
		return cmdPrimitive(args[1:], out, errOut, "decrypt")
	case "sign":
		return cmdPrimitive(args[1:], out, errOut, "sign")
	case "recover":
		return cmdPrimitive(args[1:], out, errOut, "recover")
	case "i2osp":
		return cmdI2OSP(args[1:], out, errOut)
	case "os2ip":
		return cmdOS2IP(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "rsa-pkcs1: raw PKCS #1 primitive and key CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  rsa-pkcs1 key init --name <name> [--bits <n>] [--safe] [--store <dir>] [--force]")
	fmt.Fprintln(w, "  rsa-pkcs1 key list [--store <dir>]")
	fmt.Fprintln(w, "  rsa-pkcs1 key export --name <name> [--store <dir>]")
	fmt.Fprintln(w, "  rsa-pkcs1 key fingerprint --name <name> [--alg cid|sha256|sha3-256] [--store <dir>]")
	fmt.Fprintln(w, "  rsa-pkcs1 encrypt  --key <pem> <hex>")
	fmt.Fprintln(w, "  rsa-pkcs1 decrypt  --key <pem> <hex>")
	fmt.Fprintln(w, "  rsa-pkcs1 sign     --key <pem> <hex>")
	fmt.Fprintln(w, "  rsa-pkcs1 recover  --key <pem> <hex>")
	fmt.Fprintln(w, "  rsa-pkcs1 i2osp --len <n> <decimal>")
	fmt.Fprintln(w, "  rsa-pkcs1 os2ip <hex>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - encrypt/decrypt/sign/recover are the raw textbook primitives: no padding,")
	fmt.Fprintln(w, "    no hashing. Output is always exactly k octets of hex (k = modulus length).")
	fmt.Fprintln(w, "  - encrypt/recover accept a public or private PEM; decrypt/sign need a private PEM")
	fmt.Fprintln(w, "  - the default key store lives under ~/.nfgallimore/rsa-keys/<name>")
}

func cmdKey(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: rsa-pkcs1 key <subcommand> ...")
		fmt.Fprintln(errOut, "subcommands: init, list, export, fingerprint")
		return 2
	}
	switch args[0] {
	case "init":
		fs := flag.NewFlagSet("key init", flag.ContinueOnError)
		fs.SetOutput(errOut)
		name := fs.String("name", "", "key name")
		bits := fs.Int("bits", 2048, "modulus bit length")
		safe := fs.Bool("safe", false, "build the modulus from two safe primes")
		store := fs.String("store", "", "key store directory")
		force := fs.Bool("force", false, "overwrite an existing key")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		if *name == "" {
			fmt.Fprintln(errOut, "key init: --name is required")
			return 2
		}

		var priv *rsa.PrivateKey
		var err error
		if *safe {
			priv, err = keys.GenerateSafe(rand.Reader, *bits)
		} else {
			priv, err = keys.Generate(rand.Reader, *bits)
		}
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}

		ks, err := keys.CreateKeyStore(*store)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		fingerprint, filePath, err := ks.Init(*name, priv, *force)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		fmt.Fprintf(out, "%s\t%s\t%s\n", *name, fingerprint, filePath)
		return 0

	case "list":
		fs := flag.NewFlagSet("key list", flag.ContinueOnError)
		fs.SetOutput(errOut)
		store := fs.String("store", "", "key store directory")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		ks, err := keys.CreateKeyStore(*store)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		entries, err := ks.List()
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		for _, e := range entries {
			fmt.Fprintf(out, "%s\t%s\n", e.Name, e.Fingerprint)
		}
		return 0

	case "export":
		fs := flag.NewFlagSet("key export", flag.ContinueOnError)
		fs.SetOutput(errOut)
		name := fs.String("name", "", "key name")
		store := fs.String("store", "", "key store directory")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		if *name == "" {
			fmt.Fprintln(errOut, "key export: --name is required")
			return 2
		}
		ks, err := keys.CreateKeyStore(*store)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		pubPEM, err := ks.ExportPublic(*name)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		_, _ = out.Write(pubPEM)
		return 0

	case "fingerprint":
		fs := flag.NewFlagSet("key fingerprint", flag.ContinueOnError)
		fs.SetOutput(errOut)
		name := fs.String("name", "", "key name")
		alg := fs.String("alg", "cid", "fingerprint algorithm: cid, sha256, sha3-256")
		store := fs.String("store", "", "key store directory")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		if *name == "" {
			fmt.Fprintln(errOut, "key fingerprint: --name is required")
			return 2
		}
		ks, err := keys.CreateKeyStore(*store)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		priv, err := ks.Load(*name)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		var fingerprint string
		if *alg == "cid" {
			fingerprint, err = keys.FingerprintCID(&priv.PublicKey)
		} else {
			fingerprint, err = keys.Fingerprint(&priv.PublicKey, *alg)
		}
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		fmt.Fprintln(out, fingerprint)
		return 0

	default:
		fmt.Fprintf(errOut, "unknown key subcommand: %s\n", args[0])
		return 2
	}
}

func cmdPrimitive(args []string, out io.Writer, errOut io.Writer, op string) int {
	fs := flag.NewFlagSet(op, flag.ContinueOnError)
	fs.SetOutput(errOut)
	keyFile := fs.String("key", "", "PEM key file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *keyFile == "" || fs.NArg() != 1 {
		fmt.Fprintf(errOut, "usage: rsa-pkcs1 %s --key <pem> <hex>\n", op)
		return 2
	}

	pemBytes, err := os.ReadFile(*keyFile)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	payload, err := hex.DecodeString(strings.TrimSpace(fs.Arg(0)))
	if err != nil {
		fmt.Fprintf(errOut, "invalid hex payload: %v\n", err)
		return 2
	}
	rep := pkcs1.OS2IP(payload)

	var result *big.Int
	var pub *rsa.PublicKey
	switch op {
	case "encrypt", "recover":
		pub, err = keys.ParsePublicPEM(pemBytes)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		if op == "encrypt" {
			result, err = pkcs1.RSAEP(keys.FromPublic(pub), rep)
		} else {
			result, err = pkcs1.RSAVP1(keys.FromPublic(pub), rep)
		}
	case "decrypt", "sign":
		var priv *rsa.PrivateKey
		priv, err = keys.ParsePrivatePEM(pemBytes)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		pub = &priv.PublicKey
		if op == "decrypt" {
			result, err = pkcs1.RSADP(keys.FromPrivate(priv), rep)
		} else {
			result, err = pkcs1.RSASP1(keys.FromPrivate(priv), rep)
		}
	}
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	octets, err := pkcs1.I2OSP(result, keys.Size(keys.FromPublic(pub)))
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	fmt.Fprintln(out, hex.EncodeToString(octets))
	return 0
}

func cmdI2OSP(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("i2osp", flag.ContinueOnError)
	fs.SetOutput(errOut)
	length := fs.Int("len", -1, "octet string length")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: rsa-pkcs1 i2osp --len <n> <decimal>")
		return 2
	}
	x, ok := new(big.Int).SetString(fs.Arg(0), 10)
	if !ok {
		fmt.Fprintf(errOut, "invalid decimal integer: %q\n", fs.Arg(0))
		return 2
	}

	var octets []byte
	var err error
	if *length < 0 {
		octets, err = pkcs1.I2OSPMinimal(x)
	} else {
		octets, err = pkcs1.I2OSP(x, *length)
	}
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	fmt.Fprintln(out, hex.EncodeToString(octets))
	return 0
}

func cmdOS2IP(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "usage: rsa-pkcs1 os2ip <hex>")
		return 2
	}
	octets, err := hex.DecodeString(strings.TrimSpace(args[0]))
	if err != nil {
		fmt.Fprintf(errOut, "invalid hex octet string: %v\n", err)
		return 2
	}
	fmt.Fprintln(out, pkcs1.OS2IP(octets).String())
	return 0
}

package main

import (
	"crypto/rsa"
	"flag"
	"fmt"
	"net"
	"os"

	"google.golang.org/grpc"

	"github.com/nfgallimore/rsa/grpcrsa"
	"github.com/nfgallimore/rsa/keys"
)

func main() {
	fs := flag.NewFlagSet("rsa-rawgrpcd", flag.ExitOnError)
	listen := fs.String("listen", "127.0.0.1:7778", "listen address")
	keyFile := fs.String("key", "", "PKCS #1 PEM private key file")
	name := fs.String("name", "", "key store entry to serve")
	store := fs.String("store", "", "key store directory")

	_ = fs.Parse(os.Args[1:])
	if (*keyFile == "") == (*name == "") {
		fmt.Fprintln(os.Stderr, "exactly one of --key or --name is required")
		os.Exit(2)
	}

	priv, err := loadKey(*keyFile, *name, *store)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer lis.Close()

	s := grpc.NewServer()
	grpcrsa.RegisterPrimitiveServer(s, &grpcrsa.Server{Key: priv})

	fingerprint, err := keys.FingerprintCID(&priv.PublicKey)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "rsa-rawgrpcd listening on %s (key=%s)\n", lis.Addr().String(), fingerprint)
	if err := s.Serve(lis); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadKey(keyFile, name, store string) (*rsa.PrivateKey, error) {
	if keyFile != "" {
		data, err := os.ReadFile(keyFile)
		if err != nil {
			return nil, err
		}
		return keys.ParsePrivatePEM(data)
	}
	ks, err := keys.CreateKeyStore(store)
	if err != nil {
		return nil, err
	}
	return ks.Load(name)
}

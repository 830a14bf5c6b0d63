// Command domaininfo looks up WHOIS registration data and DNS records for a
// domain and prints them to stdout.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jroosing/domaininfo/internal/logging"
	"github.com/jroosing/domaininfo/internal/lookup"
	"github.com/jroosing/domaininfo/internal/resolver"
	"github.com/jroosing/domaininfo/internal/whois"
)

func main() {
	var (
		timeout     = flag.Duration("timeout", 30*time.Second, "Overall lookup timeout")
		jsonOut     = flag.Bool("json", false, "Emit the result as JSON")
		tcpFallback = flag.Bool("tcp-fallback", true, "Retry truncated DNS responses over TCP")
		debug       = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] DOMAIN\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	domain := flag.Arg(0)

	level := "WARN"
	if *debug {
		level = "DEBUG"
	}
	logger := logging.Configure(logging.Config{Level: level})

	service := lookup.NewService(
		whois.New(0),
		resolver.New(resolver.Options{TCPFallback: *tcpFallback}),
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	result, err := service.Lookup(ctx, domain)
	if err != nil {
		fmt.Fprintf(os.Stderr, "please enter a valid domain (e.g. example.com)\n")
		os.Exit(1)
	}

	if *jsonOut {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "encoding result: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}
	printResult(result)
}

func printResult(r lookup.Result) {
	fmt.Printf("Domain: %s\n\n", r.Domain)

	fmt.Println("WHOIS:")
	if rec := r.Registration.Record; rec != nil {
		printField("Registrar", rec.Registrar)
		printField("Created", rec.CreatedDate.String())
		printField("Expires", rec.ExpiryDate.String())
		printField("Status", rec.Status.String())
		for _, ns := range rec.Nameservers {
			printField("Name Server", ns)
		}
	} else {
		fmt.Printf("  %s\n", r.Registration.Err.Message)
	}

	fmt.Println("\nDNS:")
	for _, rt := range lookup.RecordTypes {
		res := r.Records[rt]
		if !res.OK() {
			fmt.Printf("  %-5s %s\n", rt+":", res.Err)
			continue
		}
		for _, v := range res.Values {
			fmt.Printf("  %-5s %s\n", rt+":", v)
		}
	}
}

func printField(name, value string) {
	if value == "" {
		return
	}
	fmt.Printf("  %s: %s\n", name, value)
}

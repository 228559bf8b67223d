// Command iec104logs drives the decode pipeline over a log file and prints
// every decoded result as JSON. It exists only to demonstrate the pipeline
// end to end; it is not part of the core contract and opens no network
// port.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/scada-tools/iec104-logreplay/logbuffer"
	"github.com/scada-tools/iec104-logreplay/pipeline"
)

func main() {
	logFile := flag.String("log", "", "path to a SCADA gateway debug log (required)")
	bufferMode := flag.String("buffer", "memory", "log buffer backing store: memory|file")
	tmpDir := flag.String("tmpdir", os.TempDir(), "directory for the file-backed buffer")
	flag.Parse()

	if *logFile == "" {
		fmt.Fprintln(os.Stderr, "usage: iec104logs -log <path> [-buffer memory|file] [-tmpdir dir]")
		os.Exit(2)
	}

	f, err := os.Open(*logFile)
	if err != nil {
		log.Fatalf("iec104logs: %v", err)
	}
	defer f.Close()

	mode := logbuffer.InMemory
	if *bufferMode == "file" {
		mode = logbuffer.File
	}
	lb, err := logbuffer.New(mode, 0, *tmpDir)
	if err != nil {
		log.Fatalf("iec104logs: building log buffer: %v", err)
	}
	defer lb.Dispose()

	p := pipeline.New(lb)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := p.Ingest(scanner.Text()); err != nil {
			log.Printf("iec104logs: ingest error: %v", err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("iec104logs: reading %s: %v", *logFile, err)
	}

	enc := json.NewEncoder(os.Stdout)
	for _, r := range p.Drain() {
		if err := enc.Encode(r); err != nil {
			log.Printf("iec104logs: encode error: %v", err)
		}
	}
}

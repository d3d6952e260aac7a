package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"wwmem/config"
	"wwmem/display"
	"wwmem/dolphin"
	"wwmem/process"
	"wwmem/process_blob"
	"wwmem/windwaker"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

var log = logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "wwwatch"))

func main() {
	configFlag := flag.String("config", ".", "Directory containing "+config.FileName)
	pidFlag := flag.Int("pid", 0, "Dolphin process ID (default: find by name)")
	replayFlag := flag.String("replay", "", "Read from a MEM1 dump directory instead of a live process")
	onceFlag := flag.Bool("once", false, "Print one snapshot and exit")
	intervalFlag := flag.Duration("interval", 0, "Poll interval (default from config)")
	jsonFlag := flag.Bool("json", false, "Print snapshots as JSON lines")
	dumpFlag := flag.String("dump", "", "Save MEM1 to this directory and exit")
	peekFlag := flag.String("peek", "", "Hexdump guest memory at this address (hex) and exit")
	peekSizeFlag := flag.Int("peek-size", 64, "Number of bytes for -peek")
	flag.Parse()

	if err := config.Load(*configFlag); err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Current()
	if *intervalFlag > 0 {
		cfg.Interval = *intervalFlag
	}
	if *jsonFlag {
		cfg.JSON = true
	}
	if *dumpFlag != "" {
		cfg.DumpDir = *dumpFlag
	}

	proc, err := openProcess(*replayFlag, *pidFlag, cfg.ProcessNames)
	if err != nil {
		fmt.Printf("Error attaching: %v\n", err)
		os.Exit(1)
	}

	d, err := dolphin.New(proc)
	if err != nil {
		proc.Close()
		fmt.Printf("Error locating game memory: %v\n", err)
		os.Exit(1)
	}
	defer d.Close()

	if !windwaker.IsSupported(d) {
		id, _ := dolphin.ReadGameID(d)
		log.Warn("unsupported game id ", strconv.Quote(id), ", reading anyway")
	}

	switch {
	case cfg.DumpDir != "":
		err = dump(d, cfg.DumpDir)
	case *peekFlag != "":
		err = peek(d, *peekFlag, *peekSizeFlag, cfg.Color)
	default:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = watch(ctx, d, cfg, *onceFlag)
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func openProcess(replay string, pid int, names []string) (process.Process, error) {
	if replay != "" {
		blob, err := process_blob.Load(replay)
		if err != nil {
			return nil, fmt.Errorf("failed to load dump from %s: %w", replay, err)
		}
		log.Infoln("Loaded dump", replay, "from process", blob.Name, blob.PID)
		return blob, nil
	}
	return attach(process.ProcessID(pid), names)
}

func dump(d *dolphin.Dolphin, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return d.SaveMEM1(dir, "dolphin-emu")
}

func peek(d *dolphin.Dolphin, addr string, size int, color bool) error {
	v, err := strconv.ParseUint(strings.TrimPrefix(addr, "0x"), 16, 32)
	if err != nil {
		return fmt.Errorf("failed to parse address: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("invalid size %d", size)
	}

	data, err := d.ReadMemory(uint32(v), uint32(size))
	if err != nil {
		return err
	}

	opts := display.DefaultHexdumpOptions()
	opts.Color = color
	opts.IsPointer = dolphin.IsGuestPointer
	return display.Hexdump(os.Stdout, data, uint32(v), opts)
}

func watch(ctx context.Context, d *dolphin.Dolphin, cfg config.Watch, once bool) error {
	r := windwaker.NewReader()
	enc := json.NewEncoder(os.Stdout)

	poll := func() {
		s, err := r.Snapshot(d)
		if err != nil {
			log.Warn("snapshot failed: ", err)
			return
		}
		if cfg.JSON {
			if err := enc.Encode(s); err != nil {
				log.Warn("failed to write snapshot: ", err)
			}
			return
		}
		if err := display.SnapshotTable(s, cfg.Color).Render(os.Stdout); err != nil {
			log.Warn("failed to write snapshot: ", err)
		}
		fmt.Println()
	}

	poll()
	if once {
		return nil
	}

	if cfg.Interval <= 0 {
		return fmt.Errorf("invalid poll interval %s", cfg.Interval)
	}
	log.Infoln("Polling every", cfg.Interval)

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Infoln("Stopping")
			return nil
		case <-ticker.C:
			poll()
		}
	}
}

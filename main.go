package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"

	"sketchboard/internal/board"
	"sketchboard/internal/bridge"
	"sketchboard/internal/ui"
)

func main() {
	listen := flag.String("listen", ":8877", "address for the change-stream websocket")
	share := flag.Bool("share", true, "publish board changes on the local network")
	load := flag.String("load", "", "board file to open on startup")
	discover := flag.Bool("discover", false, "list boards advertised on the local network and exit")
	flag.Parse()

	if *discover {
		if err := bridge.Browse(func(addr string) {
			fmt.Printf("ws://%s/ws\n", addr)
		}); err != nil {
			log.Fatalf("discovery failed: %v", err)
		}
		return
	}

	b := board.New()

	if *load != "" {
		f, err := os.Open(*load)
		if err != nil {
			log.Fatalf("open %s: %v", *load, err)
		}
		if err := b.Load(f); err != nil {
			f.Close()
			log.Fatalf("%v", err)
		}
		f.Close()
	}

	shareLink := ""
	if *share {
		hub := bridge.NewHub()
		defer hub.Close()
		b.OnChange = func(ev board.Event) { hub.Broadcast(ev) }

		mux := http.NewServeMux()
		mux.Handle("/ws", hub.Handler())
		go func() {
			if err := http.ListenAndServe(*listen, mux); err != nil {
				log.Printf("[main] change stream unavailable: %v", err)
			}
		}()

		if port := listenPort(*listen); port > 0 {
			if server, err := bridge.Advertise(port); err != nil {
				log.Printf("[main] mDNS advertisement failed: %v", err)
			} else {
				defer server.Shutdown()
			}
			if ip, err := bridge.OutgoingIP(); err == nil {
				shareLink = fmt.Sprintf("ws://%s:%d/ws", ip, port)
			}
		}
	}

	ui.RunApp(shareLink, b)
}

func listenPort(addr string) int {
	_, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return 0
	}
	port, err := net.LookupPort("tcp", portStr)
	if err != nil {
		return 0
	}
	return port
}

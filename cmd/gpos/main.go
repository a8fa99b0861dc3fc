package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/mastercactapus/gpos/gcode"
	"github.com/mastercactapus/gpos/position"
	"github.com/mastercactapus/gpos/profile"
)

func main() {
	log.SetFlags(log.Lshortfile)

	profilePath := flag.String("profile", "printer.toml", "Printer profile (.toml, .yaml or .json). Defaults are used if missing.")
	addr := flag.String("addr", "", "Address to serve the tracking API on. If empty, track the file argument (or stdin) and exit.")
	asJSON := flag.Bool("json", false, "Print every position as a JSON line instead of a layer summary.")
	normalize := flag.Bool("normalize", false, "Print the parsed G-code in normalized form instead of tracking it.")
	flag.Parse()

	if *addr != "" {
		w, err := profile.Watch(*profilePath)
		if err != nil {
			log.Fatal(err)
		}
		defer w.Close()
		go func() {
			for err := range w.Errors() {
				log.Println("ERROR: profile:", err)
			}
		}()
		w.OnChange(func(p *profile.Profile) { log.Printf("profile %q reloaded", p.Name) })

		api := newAPI(w.Profile)
		err = http.ListenAndServe(*addr, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "*")
			log.Printf("%s %s - %s", req.Method, req.URL.Path, req.RemoteAddr)
			api.ServeHTTP(w, req)
		}))
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	p, err := profile.Load(*profilePath)
	if err != nil {
		log.Fatal(err)
	}

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		fd, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer fd.Close()
		in = fd
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if *normalize {
		_, err = io.Copy(out, gcode.NewBuffer(gcode.NewParser(in)))
	} else {
		err = run(in, out, p.Config(), *asJSON)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func run(in io.Reader, out io.Writer, cfg position.Config, asJSON bool) error {
	e := position.NewEngine(cfg)
	if asJSON {
		enc := json.NewEncoder(out)
		return position.Track(gcode.NewParser(in), e, func(p position.Position) error {
			return enc.Encode(p)
		})
	}

	var s position.Summary
	err := position.Track(gcode.NewParser(in), e, func(p position.Position) error {
		s.Add(p)
		return nil
	})
	if err != nil {
		return err
	}
	return printSummary(out, s)
}

func printSummary(w io.Writer, s position.Summary) error {
	_, err := fmt.Fprintf(w, "commands=%d ignored=%d out_of_bounds=%d extruded=%.5f layers=%d\n",
		s.Commands, s.Ignored, s.OutOfBounds, s.Extruded, len(s.Layers))
	if err != nil {
		return err
	}
	for _, l := range s.Layers {
		_, err = fmt.Fprintf(w, "layer %d z=%.3f lines %d-%d commands=%d extruded=%.5f zhops=%d feature=%s\n",
			l.Layer, l.Height, l.FirstLine, l.LastLine, l.Commands, l.Extruded, l.ZHops, l.BestFeature)
		if err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	sse "github.com/alexandrevicenzi/go-sse"
	"github.com/gorilla/mux"
	"github.com/mastercactapus/gpos/gcode"
	"github.com/mastercactapus/gpos/position"
	"github.com/mastercactapus/gpos/profile"
)

type api struct {
	http.Handler
	profile func() *profile.Profile
	sse     *sse.Server
}

type layerEvent struct {
	Job   int64   `json:"job"`
	Layer int     `json:"layer"`
	Z     float64 `json:"z"`
	Line  int     `json:"line"`
}

type trackResponse struct {
	Summary   *position.Summary   `json:"summary,omitempty"`
	Positions []position.Position `json:"positions,omitempty"`
}

func newAPI(prof func() *profile.Profile) *api {
	r := mux.NewRouter()

	a := &api{
		Handler: r,
		profile: prof,
		sse: sse.NewServer(&sse.Options{
			Logger: log.New(ioutil.Discard, "", 0),
		}),
	}

	r.HandleFunc("/api/track", a.track).Methods("POST")
	r.HandleFunc("/api/profile", a.getProfile).Methods("GET")
	r.HandleFunc("/ws/track", a.wsTrack)
	r.PathPrefix("/events/").Handler(a.sse)

	return a
}

func (a *api) getProfile(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(a.profile())
	if err != nil {
		log.Printf("ERROR: write profile: %+v", err)
	}
}

var jobID int64

// track runs the posted G-code through a fresh engine. A JSON body is an
// array of single commands; anything else is read as a G-code file. Layer
// changes are published on /events/layer while tracking.
func (a *api) track(w http.ResponseWriter, req *http.Request) {
	withPositions, _ := strconv.ParseBool(req.URL.Query().Get("positions"))

	var r gcode.Reader = gcode.NewParser(req.Body)
	if strings.HasPrefix(req.Header.Get("Content-Type"), "application/json") {
		var cmds gcode.SliceReader
		err := json.NewDecoder(req.Body).Decode(&cmds)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		r = &cmds
	}

	job := atomic.AddInt64(&jobID, 1)

	e := position.NewEngine(a.profile().Config())
	var resp trackResponse
	var s position.Summary
	err := position.Track(r, e, func(p position.Position) error {
		s.Add(p)
		if withPositions {
			resp.Positions = append(resp.Positions, p)
		}
		if p.IsLayerChange {
			a.publishLayer(layerEvent{Job: job, Layer: p.Layer, Z: p.Height, Line: p.FileLineNumber})
		}
		return nil
	})
	if err != nil {
		log.Printf("ERROR: track: %+v", err)
		http.Error(w, err.Error(), 500)
		return
	}
	resp.Summary = &s

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(resp)
	if err != nil {
		log.Printf("ERROR: write response: %+v", err)
	}
}

func (a *api) publishLayer(ev layerEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("ERROR: marshal json: %+v", err)
		return
	}
	a.sse.SendMessage("/events/layer", sse.SimpleMessage(string(data)))
}

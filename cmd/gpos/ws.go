package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/mastercactapus/gpos/gcode"
	"github.com/mastercactapus/gpos/position"
)

// undoCommand reverts the last tracked command of the connection.
const undoCommand = "!undo"

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

type wsError struct {
	Error string `json:"error"`
}

// wsTrack tracks one G-code line per text message. Each message is answered
// with the current position, or an error object.
func (a *api) wsTrack(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		log.Println("ERROR: upgrade:", err)
		return
	}
	defer ws.Close()

	e := position.NewEngine(a.profile().Config())
	var line, n int
	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Println("ERROR: read:", err)
			}
			return
		}

		var reply interface{}
		text := strings.TrimSpace(string(data))
		if text == undoCommand {
			if err := e.UndoUpdate(); err != nil {
				reply = wsError{Error: err.Error()}
			} else {
				n--
				reply = e.Current()
			}
		} else {
			line++
			cmd, err := gcode.ParseLine(text)
			if err != nil {
				reply = wsError{Error: err.Error()}
			} else {
				if !cmd.IsComment() {
					n++
				}
				e.Update(cmd, line, n)
				reply = e.Current()
			}
		}

		err = ws.WriteJSON(reply)
		if err != nil {
			log.Println("ERROR: write:", err)
			return
		}
	}
}

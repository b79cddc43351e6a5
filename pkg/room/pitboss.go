package room

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Message is the envelope pushed to connected clients
type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type stateChange struct {
	roundID uuid.UUID
	data    interface{}
}

// PitBoss tracks the spectators of each round and fans state changes out
// to them
type PitBoss struct {
	pits       map[uuid.UUID]map[*Client]bool
	connect    chan *Client
	disconnect chan *Client
	changes    chan stateChange
}

// NewPitBoss returns a new dispatch object
func NewPitBoss() *PitBoss {
	return &PitBoss{
		pits:       make(map[uuid.UUID]map[*Client]bool),
		connect:    make(chan *Client, 256),
		disconnect: make(chan *Client, 256),
		changes:    make(chan stateChange, 256),
	}
}

// StartShift starts the PitBoss run loop
func (p *PitBoss) StartShift() {
	go p.runLoop()
}

func (p *PitBoss) runLoop() {
	for {
		select {
		case client := <-p.connect:
			logrus.WithField("client", client.String()).Debug("client connected")
			pit, found := p.pits[client.RoundID]
			if !found {
				pit = make(map[*Client]bool)
				p.pits[client.RoundID] = pit
			}

			pit[client] = true
		case client := <-p.disconnect:
			logrus.WithField("client", client.String()).Debug("client disconnected")
			pit, found := p.pits[client.RoundID]
			if !found {
				continue
			}

			delete(pit, client)
			if len(pit) == 0 {
				delete(p.pits, client.RoundID)
			}
		case change := <-p.changes:
			for client := range p.pits[change.roundID] {
				if !client.Send(Message{Event: "state", Data: change.data}) {
					logrus.WithField("client", client.String()).Warn("client send buffer is full")
				}
			}
		}
	}
}

// ClientConnected is called when a client connects to the server
func (p *PitBoss) ClientConnected(client *Client) {
	p.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.disconnect <- client
}

// StateChanged pushes the round's new state to every connected spectator
func (p *PitBoss) StateChanged(roundID uuid.UUID, data interface{}) {
	p.changes <- stateChange{roundID: roundID, data: data}
}

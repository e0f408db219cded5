package connection

import (
	"encoding/json"

	"github.com/gorilla/websocket"
)

// MessageChannel is one reliable, ordered, message oriented duplex
// link to a remote player. Implementations tolerate one concurrent
// reader and one concurrent writer.
type MessageChannel interface {
	Send(msg any) error
	Receive() (Envelope, error)
	Close() error
}

// WsMessageChannel runs the message exchange over one websocket
// connection.
type WsMessageChannel struct {
	conn *websocket.Conn
}

var _ MessageChannel = (*WsMessageChannel)(nil)

func NewWsMessageChannel(conn *websocket.Conn) *WsMessageChannel {
	return &WsMessageChannel{conn: conn}
}

func (wmc *WsMessageChannel) Send(msg any) error {
	return wmc.conn.WriteJSON(msg)
}

// Receive blocks for the next frame and peels the envelope off it.
// The ConnErr code tells a malformed frame apart from a connection
// that is gone.
func (wmc *WsMessageChannel) Receive() (Envelope, error) {
	_, payload, err := wmc.conn.ReadMessage()
	if err != nil {
		return Envelope{}, NewConnErr(ConnClosed).AddDesc(err.Error())
	}

	var envelope Envelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return Envelope{}, NewConnErr(ConnMalformedPayload).AddDesc(err.Error())
	}
	return envelope, nil
}

func (wmc *WsMessageChannel) Close() error {
	return wmc.conn.Close()
}

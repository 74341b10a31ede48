package tui

import "github.com/MKhiriev/go-mission-hub/models"

type replyMsg struct {
	reply models.ChatReply
	err   error
}

type clearStatusMsg struct{}

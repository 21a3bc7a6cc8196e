package web

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const flashKey = "flash"

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

// Flash queues a message for the next rendered page
func (s *Session) Flash(message string) {
	s.AddFlash(message, flashKey)
	if err := s.Save(); err != nil {
		log.Printf("session save: %v", err)
	}
}

// TakeFlashes returns and clears the queued messages
func (s *Session) TakeFlashes() (result []string) {
	flashes := s.Flashes(flashKey)
	if len(flashes) == 0 {
		return
	}
	if err := s.Save(); err != nil {
		log.Printf("session save: %v", err)
	}
	for _, f := range flashes {
		if message, ok := f.(string); ok {
			result = append(result, message)
		}
	}
	return
}

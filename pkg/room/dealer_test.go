package room

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"holdemtable-server/pkg/table"
)

func TestDealer_broadcast(t *testing.T) {
	a := assert.New(t)

	messages := make(chan *table.LogMessage, 16)
	dealer := newDealer(logrus.StandardLogger(), messages)
	dealer.StartShift()
	defer dealer.EndShift()

	client := NewClient(nil)
	dealer.AddClient(client)

	// let the run loop pick up the registration before publishing
	time.Sleep(time.Millisecond * 50)

	messages <- &table.LogMessage{UUID: "1", Message: "Alice checked"}

	select {
	case msg := <-client.Send():
		a.Equal("Alice checked", msg.Message)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
	}

	dealer.RemoveClient(client)

	select {
	case _, open := <-client.Send():
		a.False(open, "send channel is closed on removal")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for close")
	}
}

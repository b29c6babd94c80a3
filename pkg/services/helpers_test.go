package services_test

import (
	"github.com/tendersuite/tenderd/pkg/streaming"
)

func startEvent() streaming.Event {
	return streaming.NewStartEvent("", "")
}

func statusEvent(text string) streaming.Event {
	return streaming.NewStatusEvent(text)
}

func contentEvent(md string) streaming.Event {
	return streaming.NewContentEvent(md)
}

func endEvent() streaming.Event {
	return streaming.NewEndEvent(streaming.EndCompleted, 0, 0)
}

func parseSeq(eventID string) (int64, error) {
	return streaming.ParseEventSeq(eventID)
}

package components

import "github.com/yohamta/donburi"

// Command is a world mutation deferred until the current query finishes.
type Command func(w donburi.World)

// CommandBuffer collects deferred commands in issue order.
type CommandBuffer struct {
	queue []Command
}

func (b *CommandBuffer) Push(c Command) {
	b.queue = append(b.queue, c)
}

func (b *CommandBuffer) Len() int {
	return len(b.queue)
}

// Flush runs every queued command, including ones queued while flushing.
func (b *CommandBuffer) Flush(w donburi.World) {
	for len(b.queue) > 0 {
		q := b.queue
		b.queue = nil
		for _, c := range q {
			c(w)
		}
	}
}

type CommandsData struct {
	Buffer *CommandBuffer
}

var Commands = donburi.NewComponentType[CommandsData]()

// CommandsOf returns the world's command buffer, or nil before it exists.
func CommandsOf(w donburi.World) *CommandBuffer {
	e, ok := Commands.First(w)
	if !ok {
		return nil
	}
	return Commands.Get(e).Buffer
}

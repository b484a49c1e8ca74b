// SPDX-License-Identifier: GPL-2.0-or-later

package snd

const (
	queueSize = 32
	// seconds a queued sound may wait before it is not worth playing anymore
	queueMaxLife = 30
)

type queuedSound struct {
	added  float64
	sample int
	volume float32
}

// soundQueue plays one sound after the other, e.g. voice messages.
// The head entry stays in the queue while it plays.
type soundQueue struct {
	entries [queueSize]queuedSound
	head    int
	num     int
	channel int
	// bumped on every start so the end callback of an old voice is ignored
	gen int
}

func (q *soundQueue) init() {
	q.head = 0
	q.num = 0
	q.channel = -1
	q.gen++
}

func (q *soundQueue) pause() {
	q.channel = -1
	q.gen++
}

// ended runs when the mixer hands the channel of start gen to someone
// else. The head is done then, whether it ran out or got cut.
func (q *soundQueue) ended(gen int) {
	if gen != q.gen || q.channel < 0 {
		return
	}
	q.pop()
	q.channel = -1
}

func (q *soundQueue) push(e queuedSound) bool {
	if q.num == queueSize {
		return false
	}
	q.entries[(q.head+q.num)%queueSize] = e
	q.num++
	return true
}

func (q *soundQueue) pop() {
	if q.num == 0 {
		return
	}
	q.head = (q.head + 1) % queueSize
	q.num--
}

// StartSoundQueued adds sound to the queue. It is dropped if the queue is
// full.
func (s *Scene) StartSoundQueued(sound int, volume float32) {
	sample := s.sounds.Xlat(sound)
	if sample < 0 {
		return
	}
	if volume < QueuedVolume {
		volume = QueuedVolume
	}
	s.queue.push(queuedSound{
		added:  s.clock.Time(),
		sample: sample,
		volume: volume,
	})
	s.processQueue()
}

// QueuedSounds returns the number of waiting or playing queued sounds.
func (s *Scene) QueuedSounds() int {
	return s.queue.num
}

func (s *Scene) processQueue() {
	q := &s.queue
	if q.channel > -1 {
		if s.channels.IsPlaying(q.channel) {
			return
		}
		q.pop()
		q.channel = -1
	}
	now := s.clock.Time()
	for q.num > 0 {
		e := &q.entries[q.head]
		if now < e.added+queueMaxLife {
			q.gen++
			gen := q.gen
			q.channel = s.channels.Start(e.sample, e.volume, CenterPan, false, -1, -1,
				func() { q.ended(gen) })
			return
		}
		q.pop()
	}
}

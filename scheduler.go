package twin

import (
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Scheduler is the single-threaded outer tick loop. Phase D (intent
// computation) is the only phase eligible for parallel execution; every
// other phase runs strictly sequentially in the scheduler's own goroutine.
type Scheduler struct {
	store    *AgentStore
	rngs     *AgentRngs
	plans    []*ActivityPlan
	wakes    *WakeQueue
	messages *messageBuffer
	mobility Mobility
	behavior BehaviorModel
	observer Observer
	clock    Clock

	now                 Tick
	endTick             Tick
	tickDurationSecs    uint32
	outputIntervalTicks uint64
	numWorkers          int

	simEnded bool
}

// NewScheduler validates inputs and builds the initial wake queue from
// plans at t0=0. Returns a *BuilderError if plans or rngs don't cover
// exactly store.Count() agents — the only error class the scheduler
// propagates (spec.md §7): every other failure mode is absorbed per-agent
// at runtime.
func NewScheduler(cfg SimConfig, store *AgentStore, rngs *AgentRngs, plans []*ActivityPlan, mobility Mobility, behavior BehaviorModel, observer Observer) (*Scheduler, error) {
	count := store.Count()
	if len(plans) != count {
		return nil, &BuilderError{Reason: fmt.Sprintf("plans length %d != agent count %d", len(plans), count)}
	}
	if rngs.Len() != count {
		return nil, &BuilderError{Reason: fmt.Sprintf("rngs length %d != agent count %d", rngs.Len(), count)}
	}

	numWorkers := cfg.NumThreads
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	wakes := NewWakeQueue()
	wakes.BuildFromPlans(plans, 0)

	s := &Scheduler{
		store:               store,
		rngs:                rngs,
		plans:               plans,
		wakes:               wakes,
		messages:            newMessageBuffer(),
		mobility:            mobility,
		behavior:            behavior,
		observer:            observer,
		clock:               NewClock(cfg.StartUnixSecs, cfg.TickDurationSecs),
		now:                 0,
		endTick:             Tick(cfg.TotalTicks),
		tickDurationSecs:    cfg.TickDurationSecs,
		outputIntervalTicks: cfg.OutputIntervalTicks,
		numWorkers:          numWorkers,
	}
	return s, nil
}

// Now returns the current tick.
func (s *Scheduler) Now() Tick { return s.now }

// Run executes ticks until current_tick reaches end_tick, then invokes
// OnSimEnd exactly once.
func (s *Scheduler) Run() {
	for s.now < s.endTick {
		s.stepOneTick()
	}
	s.finish()
}

// RunTicks advances at most n ticks, or fewer if end_tick is reached first.
// This is the escape hatch for incremental stepping (spec.md §5): there is
// no in-tick cancellation, but callers may interleave other work between
// calls. OnSimEnd fires exactly once, whenever end_tick is first reached,
// whether that happens inside Run or inside a RunTicks call.
func (s *Scheduler) RunTicks(n uint64) {
	for i := uint64(0); i < n && s.now < s.endTick; i++ {
		s.stepOneTick()
	}
	if s.now >= s.endTick {
		s.finish()
	}
}

func (s *Scheduler) finish() {
	if s.simEnded {
		return
	}
	s.simEnded = true
	s.observer.OnSimEnd(s.now)
}

func (s *Scheduler) stepOneTick() {
	now := s.now
	s.observer.OnTickStart(now)

	// Phase A: arrivals.
	for _, arr := range s.mobility.TickArrivals(now) {
		if wake, ok := s.planFor(arr.Agent).nextWakeOrNone(now); ok {
			s.wakes.Push(wake, arr.Agent)
		}
	}

	// Phase B: drain.
	woken, ok := s.wakes.DrainTick(now)
	if !ok {
		s.finishTick(now, 0)
		return
	}

	// Phase C: sequential input pre-collection. The contact index is built
	// once per tick from a single scan of Mobility (spec.md §4.5), then
	// consulted once per woken agent.
	ctx := &TickContext{Now: now, TickDurationSecs: s.tickDurationSecs, Store: s.store, Plans: s.plans}
	contacts := BuildContactIndex(s.mobility)
	inputs := make([]agentInputs, len(woken))
	for i, agent := range woken {
		inputs[i].messages = s.messages.drain(agent)
		if !s.mobility.InTransit(agent) {
			node := s.mobility.DepartureNode(agent)
			inputs[i].contacts = contacts.ContactsFor(agent, node, now)
		}
	}

	// Phase D: parallel intent computation.
	results := s.computeIntents(woken, inputs, ctx)

	// Phase E: strictly sequential apply, ascending AgentId. woken is
	// ascending because WakeQueue.Push inserts each agent into its tick's
	// list in sorted position, regardless of which earlier tick the push
	// came from.
	for i, agent := range woken {
		s.applyIntents(agent, results[i], now)
	}

	logrus.Debugf("[tick %d] woken=%d", now, len(woken))
	s.finishTick(now, len(woken))
}

func (s *Scheduler) finishTick(now Tick, woken int) {
	s.observer.OnTickEnd(now, woken)
	if s.outputIntervalTicks > 0 && uint64(now)%s.outputIntervalTicks == 0 {
		s.observer.OnSnapshot(now, s.mobility, s.store)
	}
	s.now = now.Add(1)
}

func (s *Scheduler) planFor(a AgentId) planOrNone {
	return planOrNone{p: s.plans[a]}
}

// planOrNone adapts ActivityPlan's (value, bool) NextWakeTick to the
// arrivals loop above without repeating the nil check at each call site.
type planOrNone struct{ p *ActivityPlan }

func (p planOrNone) nextWakeOrNone(now Tick) (Tick, bool) {
	if p.p == nil {
		return 0, false
	}
	return p.p.NextWakeTick(now)
}

// agentInputs parallels woken: inputs[i] belongs to woken[i].
type agentInputs struct {
	messages []Message
	contacts []ContactEvent
}

// computeIntents runs phase D. Work is partitioned by AgentId modulo the
// worker count, not by position in woken: this guarantees that if the same
// AgentId appears twice in woken (tolerated per spec.md §9 — duplicates are
// not deduplicated), both occurrences land on the same goroutine and are
// processed one after another, never concurrently. That is what actually
// keeps two concurrent callers from ever holding the same agent's RNG at
// once; partitioning by position in woken would not, since nothing stops
// two equal AgentIds in woken from landing in different position-ranges.
func (s *Scheduler) computeIntents(woken []AgentId, inputs []agentInputs, ctx *TickContext) [][]Intent {
	results := make([][]Intent, len(woken))

	if s.numWorkers <= 1 || len(woken) <= 1 {
		for i, agent := range woken {
			results[i] = s.runCallbacks(agent, inputs[i], ctx)
		}
		return results
	}

	buckets := make(map[int][]int, s.numWorkers)
	for i, agent := range woken {
		b := int(agent) % s.numWorkers
		buckets[b] = append(buckets[b], i)
	}

	var g errgroup.Group
	for _, indices := range buckets {
		indices := indices
		g.Go(func() error {
			for _, i := range indices {
				results[i] = s.runCallbacks(woken[i], inputs[i], ctx)
			}
			return nil
		})
	}
	_ = g.Wait() // runCallbacks never returns an error; Wait cannot fail.

	return results
}

func (s *Scheduler) runCallbacks(agent AgentId, in agentInputs, ctx *TickContext) []Intent {
	rng := s.rngs.For(agent)

	var intents []Intent
	intents = append(intents, s.behavior.Replan(agent, ctx, rng)...)
	for _, m := range in.messages {
		intents = append(intents, s.behavior.OnMessage(agent, m.From, m.Payload, ctx, rng)...)
	}
	if len(in.contacts) > 0 {
		intents = append(intents, s.behavior.OnContacts(agent, in.contacts, ctx, rng)...)
	}
	return intents
}

// applyIntents is phase E for a single agent's intents, processed in
// emission order.
func (s *Scheduler) applyIntents(agent AgentId, intents []Intent, now Tick) {
	for _, intent := range intents {
		switch intent.Kind {
		case IntentKindWakeAt:
			if intent.WakeAtTick > now {
				s.wakes.Push(intent.WakeAtTick, agent)
			}
			// t <= now is silently discarded (spec.md §4.6 Phase E).

		case IntentKindTravelTo:
			arrival, err := s.mobility.BeginTravel(agent, intent.TravelDestination, intent.TravelMode, now, s.tickDurationSecs)
			if err != nil {
				logrus.Debugf("[tick %d] agent %s TravelTo failed: %v", now, agent, err)
				continue
			}
			s.wakes.Push(arrival, agent)

		case IntentKindSendMessage:
			s.messages.append(intent.MessageTo, agent, intent.MessagePayload)
		}
	}
}

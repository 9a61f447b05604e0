// Package montage plays the character's one-shot animations and reports
// their completion back to the state machine a number of frames later.
package montage

import (
	"log/slog"

	"github.com/milk9111/openworld/character"
)

// Clip describes one montage. WindowStart/WindowEnd bound the frames during
// which an attack's weapon collision is open; a zero WindowEnd means no
// window.
type Clip struct {
	Frames      int
	Sections    []string
	WindowStart int
	WindowEnd   int
}

// Clips is the montage set of a character.
type Clips struct {
	Attack   Clip
	HitReact Clip
	Death    Clip
	Equip    Clip
}

// Target receives completion edges and weapon window changes.
type Target interface {
	Complete(tok character.Token) bool
	SetWeaponCollisionEnabled(enabled bool)
}

// Playing is the montage currently on screen.
type Playing struct {
	Name    string
	Section string
	Frame   int
	Frames  int

	tok    character.Token
	window bool
	clip   Clip
}

// Progress is how far through the montage playback is, in [0,1].
func (p *Playing) Progress() float64 {
	if p == nil || p.Frames <= 0 {
		return 1
	}
	return float64(p.Frame) / float64(p.Frames)
}

// Player implements character.Animator on a frame counter.
type Player struct {
	clips  Clips
	target Target
	picker *SectionPicker
	active *Playing
	dead   bool
	log    *slog.Logger
}

func NewPlayer(clips Clips, picker *SectionPicker, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	return &Player{clips: clips, picker: picker, log: logger}
}

// Bind sets the receiver of completion edges. It is separate from NewPlayer
// because the character is built with the player as its animator.
func (p *Player) Bind(t Target) {
	p.target = t
}

// SetClips swaps the montage set, e.g. after prefab tuning is reloaded. The
// montage already playing keeps its original length.
func (p *Player) SetClips(c Clips) {
	p.clips = c
}

// SetPicker replaces the attack section picker after a script reload.
func (p *Player) SetPicker(picker *SectionPicker) {
	p.picker = picker
}

func (p *Player) Active() *Playing {
	return p.active
}

func (p *Player) PlayAttack(tok character.Token) {
	section, err := p.picker.Pick(p.clips.Attack.Sections)
	if err != nil {
		p.log.Warn("attack section script failed", "err", err)
	}
	p.start("attack", section, p.clips.Attack, tok)
}

func (p *Player) PlayHitReact(dir character.HitDirection, tok character.Token) {
	p.start("hit_react", dir.String(), p.clips.HitReact, tok)
}

func (p *Player) PlayDeath() {
	p.start("death", "", p.clips.Death, 0)
	p.dead = true
}

func (p *Player) PlayEquip(section string, tok character.Token) {
	p.start("equip", section, p.clips.Equip, tok)
}

func (p *Player) start(name, section string, clip Clip, tok character.Token) {
	if p.dead {
		return
	}
	p.closeWindow()
	p.active = &Playing{
		Name:    name,
		Section: section,
		Frames:  clip.Frames,
		tok:     tok,
		clip:    clip,
	}
	p.log.Debug("montage started", "montage", name, "section", section)
	if clip.Frames <= 0 {
		p.finish()
	}
}

// Update advances the active montage by one frame.
func (p *Player) Update() {
	if p.active == nil || (p.dead && p.active.Frame >= p.active.Frames) {
		return
	}
	a := p.active
	a.Frame++

	if a.clip.WindowEnd > 0 {
		open := a.Frame >= a.clip.WindowStart && a.Frame < a.clip.WindowEnd
		if open != a.window {
			a.window = open
			if p.target != nil {
				p.target.SetWeaponCollisionEnabled(open)
			}
		}
	}

	if a.Frame >= a.Frames {
		p.finish()
	}
}

func (p *Player) finish() {
	a := p.active
	p.closeWindow()
	if a.Name == "death" {
		// hold the last pose
		a.Frame = a.Frames
		return
	}
	p.active = nil
	if a.tok != 0 && p.target != nil {
		p.target.Complete(a.tok)
	}
}

func (p *Player) closeWindow() {
	if p.active == nil || !p.active.window {
		return
	}
	p.active.window = false
	if p.target != nil {
		p.target.SetWeaponCollisionEnabled(false)
	}
}

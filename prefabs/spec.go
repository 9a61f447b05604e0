package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/openworld/character"
	"github.com/milk9111/openworld/montage"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type CharacterSpec struct {
	Name          string       `yaml:"name"`
	MoveSpeed     float64      `yaml:"move_speed"`
	TurnRate      float64      `yaml:"turn_rate"`
	JumpSpeed     float64      `yaml:"jump_speed"`
	Health        float64      `yaml:"health"`
	Stamina       float64      `yaml:"stamina"`
	StaminaRegen  float64      `yaml:"stamina_regen"`
	AttackCost    float64      `yaml:"attack_cost"`
	Radius        float64      `yaml:"radius"`
	Color         *YAMLColor   `yaml:"color"`
	Montages      MontagesSpec `yaml:"montages"`
	SectionScript string       `yaml:"section_script"`
}

func LoadCharacterSpec(filename string) (*CharacterSpec, error) {
	spec, err := LoadSpec[CharacterSpec](filename)
	if err != nil {
		return nil, err
	}
	if spec.Health <= 0 {
		return nil, fmt.Errorf("prefabs: %s: health must be positive", filename)
	}
	if spec.Radius <= 0 {
		spec.Radius = 14
	}
	return &spec, nil
}

type MontagesSpec struct {
	Attack   ClipSpec `yaml:"attack"`
	HitReact ClipSpec `yaml:"hit_react"`
	Death    ClipSpec `yaml:"death"`
	Equip    ClipSpec `yaml:"equip"`
}

type ClipSpec struct {
	Frames      int      `yaml:"frames"`
	Sections    []string `yaml:"sections"`
	WindowStart int      `yaml:"window_start"`
	WindowEnd   int      `yaml:"window_end"`
}

func (c ClipSpec) clip() montage.Clip {
	return montage.Clip{
		Frames:      c.Frames,
		Sections:    append([]string(nil), c.Sections...),
		WindowStart: c.WindowStart,
		WindowEnd:   c.WindowEnd,
	}
}

// Clips converts the montage tuning into a montage set.
func (m MontagesSpec) Clips() montage.Clips {
	return montage.Clips{
		Attack:   m.Attack.clip(),
		HitReact: m.HitReact.clip(),
		Death:    m.Death.clip(),
		Equip:    m.Equip.clip(),
	}
}

type WeaponSpec struct {
	Name       string     `yaml:"name"`
	EquipState string     `yaml:"equip_state"`
	Damage     float64    `yaml:"damage"`
	Reach      float64    `yaml:"reach"`
	Color      *YAMLColor `yaml:"color"`
}

// Build creates an unowned weapon from the prefab entry.
func (w WeaponSpec) Build() (*character.Weapon, error) {
	state, ok := character.ParseCharacterState(w.EquipState)
	if !ok || state == character.Unequipped {
		return nil, fmt.Errorf("prefabs: weapon %q: invalid equip_state %q", w.Name, w.EquipState)
	}
	return character.NewWeapon(w.Name, state, w.Damage, w.Reach), nil
}

type WeaponsSpec struct {
	Weapons []WeaponSpec `yaml:"weapons"`
}

func LoadWeaponsSpec() (map[string]WeaponSpec, error) {
	spec, err := LoadSpec[WeaponsSpec]("weapons.yaml")
	if err != nil {
		return nil, err
	}
	out := make(map[string]WeaponSpec, len(spec.Weapons))
	for _, w := range spec.Weapons {
		out[w.Name] = w
	}
	return out, nil
}

type ArenaSpec struct {
	Name      string             `yaml:"name"`
	Width     float64            `yaml:"width"`
	Height    float64            `yaml:"height"`
	Spawn     PointSpec          `yaml:"spawn"`
	Weapons   []PlacedWeaponSpec `yaml:"weapons"`
	Souls     []SoulSpec         `yaml:"souls"`
	Treasures []TreasureSpec     `yaml:"treasures"`
	Hazards   []HazardSpec       `yaml:"hazards"`
	Dummies   []DummySpec        `yaml:"dummies"`
}

func LoadArenaSpec(filename string) (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PlacedWeaponSpec struct {
	Weapon string  `yaml:"weapon"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
}

type SoulSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Amount int     `yaml:"amount"`
}

type TreasureSpec struct {
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Gold int     `yaml:"gold"`
}

type HazardSpec struct {
	X              float64 `yaml:"x"`
	Y              float64 `yaml:"y"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Damage         float64 `yaml:"damage"`
	CooldownFrames int     `yaml:"cooldown_frames"`
}

type DummySpec struct {
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Health float64 `yaml:"health"`
	Facing float64 `yaml:"facing"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the parsed color, or fallback when unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

// Package entity defines the things that live on the map: walking
// characters, flying projectiles and inert items. The set is closed; code
// that needs per-kind behaviour switches on the concrete type.
package entity

import "tilewalk/anim"

// TileSize is the width and height of one grid cell in pixels.
const TileSize = 16

type Kind int

const (
	KindItem Kind = iota
	KindCharacter
	KindProjectile
)

func (k Kind) String() string {
	switch k {
	case KindCharacter:
		return "character"
	case KindProjectile:
		return "projectile"
	default:
		return "item"
	}
}

// Entity is implemented by *Character, *Projectile and *Item.
type Entity interface {
	Common() *Base
	Kind() Kind
	isEntity()
}

// Base holds the fields every entity kind shares.
type Base struct {
	ID           int
	X, Y         float64
	GridX, GridY int
	Orientation  Orientation
	SpriteLoaded bool
	Animation    *anim.Animation

	// Fading entities ramp FadingAlpha from 0 to 1 starting at FadingTime.
	Fading      bool
	FadingAlpha float64
	FadingTime  float64
}

func (b *Base) Common() *Base { return b }

func (b *Base) isEntity() {}

// SetGridPosition places the entity on a cell and snaps its pixel position.
func (b *Base) SetGridPosition(x, y int) {
	b.GridX, b.GridY = x, y
	b.X = float64(x * TileSize)
	b.Y = float64(y * TileSize)
}

// Cell returns the grid cell the entity occupies.
func (b *Base) Cell() Cell {
	return Cell{X: b.GridX, Y: b.GridY}
}

// FadeIn starts the alpha ramp at world time now.
func (b *Base) FadeIn(now float64) {
	b.Fading = true
	b.FadingAlpha = 0
	b.FadingTime = now
}

// Alpha is the opacity the renderer should draw the entity with.
func (b *Base) Alpha() float64 {
	if b.Fading {
		return b.FadingAlpha
	}
	return 1
}

// Item is an entity without behaviour of its own, such as loot or an NPC
// prop. It only fades and animates.
type Item struct {
	Base
	Name string
}

func NewItem(id int, name string) *Item {
	return &Item{Base: Base{ID: id}, Name: name}
}

func (*Item) Kind() Kind { return KindItem }

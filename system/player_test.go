package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"pgregory.net/rapid"

	"github.com/lixenwraith/hexfire/core"
	"github.com/lixenwraith/hexfire/event"
	"github.com/lixenwraith/hexfire/parameter"
)

const eps = 1e-9

func TestChargePowerBelowThreshold(t *testing.T) {
	for _, ct := range []float64{0, 0.1, 0.5, 0.999} {
		if got := ChargePower(ct); got != 1 {
			t.Errorf("ChargePower(%v): expected 1, got %v", ct, got)
		}
	}
}

func TestChargePowerProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ct := rapid.Float64Range(1, 5).Draw(t, "chargeTime")
		magic := rapid.Float64Range(1, 100).Draw(t, "magic")

		f := newReadyPlayer()
		f.player.magic = magic

		if !f.player.Fire(ct) {
			t.Fatalf("shot suppressed with magic %v", magic)
		}
		bullets := f.bullets.PlayerBullets()
		if len(bullets) != 1 {
			t.Fatalf("expected 1 bullet, got %d", len(bullets))
		}

		want := math.Min(math.Pow(2, ct), magic)
		if math.Abs(bullets[0].Damage-want) > eps {
			t.Fatalf("power: expected %v, got %v", want, bullets[0].Damage)
		}
		if math.Abs(f.player.magic-(magic-want)) > eps {
			t.Fatalf("magic: expected %v, got %v", magic-want, f.player.magic)
		}
	})
}

func TestFireClampsChargeTime(t *testing.T) {
	f := newReadyPlayer()
	f.player.Fire(9)
	b := f.bullets.PlayerBullets()[0]
	if b.Damage != 32 {
		t.Errorf("Expected power 32 for an over-long hold, got %v", b.Damage)
	}
	if math.Abs(b.Size-parameter.ChargeMaxSize) > eps {
		t.Errorf("Expected max size, got %v", b.Size)
	}
	if b.Color != core.RGBRed {
		t.Errorf("Expected red bullet, got %+v", b.Color)
	}
	if f.audio.count(core.CueAttackLarge) != 1 {
		t.Errorf("Expected attack_large cue, got %v", f.audio.cues)
	}
}

func TestFireMinimumShot(t *testing.T) {
	f := newReadyPlayer()
	f.player.Fire(0.2)
	b := f.bullets.PlayerBullets()[0]
	if b.Damage != 1 || b.Size != parameter.ChargeMinSize || b.Color != core.RGBYellow {
		t.Errorf("Expected power 1 yellow 0.3 bullet, got %+v", b)
	}
	if b.Vel != (mgl64.Vec2{parameter.PlayerBulletSpeed, 0}) {
		t.Errorf("Expected rightward velocity, got %v", b.Vel)
	}
	if math.Abs(b.Radius-0.15) > eps {
		t.Errorf("Expected radius 0.15, got %v", b.Radius)
	}
	if f.audio.count(core.CueAttackSmall) != 1 {
		t.Errorf("Expected attack_small cue, got %v", f.audio.cues)
	}
}

func TestFireSuppressedWithoutMagic(t *testing.T) {
	f := newReadyPlayer()
	f.player.magic = 0.5

	if f.player.Fire(3) {
		t.Error("Expected shot to be suppressed")
	}
	if n := len(f.bullets.PlayerBullets()); n != 0 {
		t.Errorf("Expected no bullet, got %d", n)
	}
	if f.player.magic != 0.5 {
		t.Errorf("Expected magic unchanged at 0.5, got %v", f.player.magic)
	}
	if len(f.audio.cues) != 0 {
		t.Errorf("Expected no cue, got %v", f.audio.cues)
	}
}

func TestFireOnRelease(t *testing.T) {
	f := newReadyPlayer()
	f.input.state.Attack = true
	f.input.held = 2
	f.player.Update(0.016)
	if n := len(f.bullets.PlayerBullets()); n != 0 {
		t.Fatalf("Expected no bullet while held, got %d", n)
	}
	if f.player.Held() != 2 {
		t.Errorf("Expected held 2, got %v", f.player.Held())
	}

	f.input.state.Attack = false
	f.player.Update(0.016)
	bullets := f.bullets.PlayerBullets()
	if len(bullets) != 1 {
		t.Fatalf("Expected 1 bullet after release, got %d", len(bullets))
	}
	if bullets[0].Damage != 4 {
		t.Errorf("Expected power 4, got %v", bullets[0].Damage)
	}

	f.player.Update(0.016)
	if n := len(f.bullets.PlayerBullets()); n != 1 {
		t.Errorf("Expected release to fire exactly once, got %d bullets", n)
	}
}

func TestLethalDamage(t *testing.T) {
	f := newReadyPlayer()
	f.player.hp = 5

	f.player.TakeDamage(10)

	if f.player.HP() != 0 {
		t.Errorf("Expected hp 0, got %v", f.player.HP())
	}
	if !f.player.IsDead() {
		t.Error("Expected player dead")
	}
	if f.player.Lives() != parameter.PlayerStartLives-1 {
		t.Errorf("Expected lives %d, got %d", parameter.PlayerStartLives-1, f.player.Lives())
	}
	if !f.sched.Has(event.KindRespawn) {
		t.Error("Expected respawn scheduled")
	}
	if f.player.Velocity()[1] <= 0 {
		t.Errorf("Expected upward knockback, got %v", f.player.Velocity())
	}
}

func TestNonLethalDamageGrantsInvulnerability(t *testing.T) {
	f := newReadyPlayer()
	f.player.TakeDamage(30)

	if f.player.HP() != 70 {
		t.Errorf("Expected hp 70, got %v", f.player.HP())
	}
	if !f.player.IsInvulnerable() || !f.player.DamageTinted() {
		t.Error("Expected tinted invulnerability")
	}

	f.player.TakeDamage(30)
	if f.player.HP() != 70 {
		t.Errorf("Expected damage ignored while invulnerable, hp %v", f.player.HP())
	}

	for i := 0; i < 130; i++ {
		f.player.Update(1.0 / 60)
	}
	if f.player.IsInvulnerable() {
		t.Error("Expected invulnerability to expire after 2s")
	}
	if f.player.Opacity() != 1 || f.player.DamageTinted() {
		t.Errorf("Expected full opacity and no tint, got %v tint=%v", f.player.Opacity(), f.player.DamageTinted())
	}
}

func TestInvulnerabilityBlink(t *testing.T) {
	f := newReadyPlayer()
	f.player.invulnerable = true
	f.player.invulnTime = 2.0

	// 2.0 - 0.1 = 1.9, phase 0.4: visible
	f.player.Update(0.1)
	if f.player.Opacity() != 1 {
		t.Errorf("Expected visible at phase 0.4, got %v", f.player.Opacity())
	}
	// 1.9 - 0.25 = 1.65, phase 0.15: faded
	f.player.Update(0.25)
	if f.player.Opacity() != parameter.PlayerBlinkOpacity {
		t.Errorf("Expected faded at phase 0.15, got %v", f.player.Opacity())
	}
}

func TestRespawnAfterDelay(t *testing.T) {
	f := newReadyPlayer()
	f.player.hp = 1
	f.player.magic = 10
	f.player.TakeDamage(5)

	f.sched.Advance(2.9)
	if !f.player.IsDead() {
		t.Fatal("Expected still dead before 3s")
	}
	f.sched.Advance(0.2)
	if f.player.IsDead() {
		t.Fatal("Expected respawn after 3s")
	}
	if f.player.HP() != 100 || f.player.Magic() != 100 {
		t.Errorf("Expected full vitals, got hp %v magic %v", f.player.HP(), f.player.Magic())
	}
	if !f.player.InIntro() || !f.player.IsInvulnerable() {
		t.Error("Expected intro glide under invulnerability")
	}
	if f.player.Position()[0] != parameter.PlayerSpawnX {
		t.Errorf("Expected spawn x, got %v", f.player.Position())
	}
}

func TestNoRespawnWhenOutOfLives(t *testing.T) {
	f := newReadyPlayer()
	f.player.lives = 0
	f.player.TakeDamage(1000)

	if f.player.Lives() != -1 {
		t.Errorf("Expected lives -1, got %d", f.player.Lives())
	}
	if f.sched.Pending() != 0 {
		t.Errorf("Expected no respawn, got %d pending", f.sched.Pending())
	}
}

func TestIntroGlideResetsCharge(t *testing.T) {
	f := newReadyPlayer()
	f.player.intro = true
	f.player.pos = mgl64.Vec2{-5.05, 0}
	f.input.state.Attack = true
	f.input.held = 1.5

	f.player.Update(0.1)

	if f.player.InIntro() {
		t.Fatal("Expected glide to finish at the anchor")
	}
	if f.player.Position()[0] != parameter.PlayerAnchorX {
		t.Errorf("Expected x snapped to anchor, got %v", f.player.Position()[0])
	}
	if f.input.resets != 1 {
		t.Errorf("Expected one charge reset, got %d", f.input.resets)
	}
	if f.player.Velocity() != (mgl64.Vec2{}) {
		t.Errorf("Expected zero velocity, got %v", f.player.Velocity())
	}
}

func TestDigitalMovementCancels(t *testing.T) {
	f := newReadyPlayer()
	f.player.time = -0.016 // sway term sin(0) == 0 on the next update
	f.input.state = core.InputState{Left: true, Right: true, Up: true}

	f.player.Update(0.016)

	v := f.player.Velocity()
	if v[0] != 0 {
		t.Errorf("Expected horizontal cancel, got %v", v)
	}
	if math.Abs(v[1]-parameter.PlayerSpeed) > eps {
		t.Errorf("Expected full-speed up, got %v", v)
	}
}

func TestAnalogMovementWins(t *testing.T) {
	f := newReadyPlayer()
	f.player.time = -0.016
	f.input.state = core.InputState{Left: true, Move: mgl64.Vec2{0.6, 0}}

	f.player.Update(0.016)

	if v := f.player.Velocity(); math.Abs(v[0]-3) > eps {
		t.Errorf("Expected analog vx 3, got %v", v)
	}
}

func TestPositionClamped(t *testing.T) {
	f := newReadyPlayer()
	f.player.pos = mgl64.Vec2{6.6, 3.6}
	f.input.state = core.InputState{Right: true, Up: true}

	for i := 0; i < 30; i++ {
		f.player.Update(0.05)
	}
	p := f.player.Position()
	if p[0] > parameter.PlayerBoundX || p[1] > parameter.PlayerBoundY {
		t.Errorf("Expected position inside bounds, got %v", p)
	}
}

func TestUseItem(t *testing.T) {
	tests := []struct {
		name      string
		item      core.ItemKind
		hp, magic float64
		wantHP    float64
		wantMagic float64
		wantLives int
		wantCue   core.Cue
	}{
		{"health restores", core.ItemHealth, 40, 50, 100, 50, 3, core.CueItemUse},
		{"health at full grants life", core.ItemHealth, 100, 50, 100, 50, 4, core.CueOneUp},
		{"magic restores", core.ItemMagic, 40, 50, 40, 100, 3, core.CueItemUse},
		{"magic at full flushes", core.ItemMagic, 40, 100, 40, 100, 3, core.CueFlush},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newReadyPlayer()
			f.player.hp, f.player.magic = tt.hp, tt.magic
			f.player.inventory = tt.item

			f.player.UseItem()

			if f.player.HP() != tt.wantHP || f.player.Magic() != tt.wantMagic || f.player.Lives() != tt.wantLives {
				t.Errorf("Expected hp %v magic %v lives %d, got %v %v %d",
					tt.wantHP, tt.wantMagic, tt.wantLives, f.player.HP(), f.player.Magic(), f.player.Lives())
			}
			if f.player.Inventory() != core.ItemNone {
				t.Errorf("Expected slot cleared, got %s", f.player.Inventory())
			}
			if f.audio.count(tt.wantCue) != 1 {
				t.Errorf("Expected cue %s, got %v", tt.wantCue, f.audio.cues)
			}
		})
	}
}

func TestCollectItemOverwritesSlot(t *testing.T) {
	f := newReadyPlayer()
	f.player.CollectItem(core.ItemMagic)
	f.player.CollectItem(core.ItemHealth)
	if f.player.Inventory() != core.ItemHealth {
		t.Errorf("Expected health in slot, got %s", f.player.Inventory())
	}
	f.player.CollectItem(core.ItemNone)
	if f.player.Inventory() != core.ItemHealth {
		t.Errorf("Expected none to be ignored, got %s", f.player.Inventory())
	}
}

func TestDeathAnimationShrinks(t *testing.T) {
	f := newReadyPlayer()
	f.player.TakeDamage(500)
	y0 := f.player.Velocity()[1]

	f.player.Update(1)

	if f.player.Scale() >= 1 || f.player.Opacity() != f.player.Scale() {
		t.Errorf("Expected shrink with matching opacity, got scale %v opacity %v", f.player.Scale(), f.player.Opacity())
	}
	if f.player.Velocity()[1] >= y0 {
		t.Error("Expected gravity to pull the knockback down")
	}
}

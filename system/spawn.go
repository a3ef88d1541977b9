package system

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/hexfire/component"
	"github.com/lixenwraith/hexfire/core"
	"github.com/lixenwraith/hexfire/parameter"
	"github.com/lixenwraith/hexfire/vmath"
)

// ErrSpawnRefused is returned for non-itembox spawns once the boss has entered
var ErrSpawnRefused = errors.New("spawn refused while boss engaged")

// SkeletonChance is the probability of upgrading a random spawn to skeleton at stage time t
// Only consulted after SpawnSkeletonAfter
func SkeletonChance(t float64) float64 {
	return parameter.SpawnSkeletonBase + parameter.SpawnSkeletonRamp*(t/parameter.SpawnProgressWindow)
}

// DragonChance is the probability of upgrading a random spawn to dragon at stage time t
// Only consulted after SpawnDragonAfter; overrides a skeleton upgrade
func DragonChance(t float64) float64 {
	return parameter.SpawnDragonBase + parameter.SpawnDragonRamp*(t/parameter.SpawnProgressWindow)
}

// Stats returns the stat block for a variant
func Stats(v core.Variant) (parameter.EnemyStats, error) {
	switch v {
	case core.VariantGhost:
		return parameter.GhostStats, nil
	case core.VariantSkeleton:
		return parameter.SkeletonStats, nil
	case core.VariantDragon:
		return parameter.DragonStats, nil
	case core.VariantBoss:
		return parameter.BossStats, nil
	case core.VariantItembox:
		return parameter.ItemboxStats, nil
	}
	return parameter.EnemyStats{}, fmt.Errorf("stats for %s: %w", v, core.ErrUnknownVariant)
}

// direct runs the per-frame spawn director between prev and the current stage time
func (m *EnemyManager) direct(prev float64) {
	now := m.stageTime

	if now-m.lastSpawn > parameter.SpawnRollInterval {
		if m.rng.Float64() < parameter.SpawnBaseChance*m.difficulty {
			v := m.pickVariant(now)
			if _, err := m.Spawn(v); err != nil {
				m.log.Debug().Err(err).Stringer("variant", v).Msg("random spawn skipped")
			}
			m.lastSpawn = now
		}
	}

	if vmath.CrossedInterval(prev, now, parameter.SpawnItemboxInterval) {
		if _, err := m.Spawn(core.VariantItembox); err != nil {
			m.log.Warn().Err(err).Msg("scheduled itembox failed")
		}
	}

	if vmath.CrossedMark(prev, now, parameter.SpawnBossAt) {
		if _, err := m.Spawn(core.VariantBoss); err != nil {
			m.log.Debug().Err(err).Msg("scripted boss skipped")
		}
	}
}

// pickVariant applies the elapsed-time weighted upgrade rolls
func (m *EnemyManager) pickVariant(t float64) core.Variant {
	v := core.VariantGhost
	if t > parameter.SpawnSkeletonAfter && m.rng.Float64() < SkeletonChance(t) {
		v = core.VariantSkeleton
	}
	if t > parameter.SpawnDragonAfter && m.rng.Float64() < DragonChance(t) {
		v = core.VariantDragon
	}
	return v
}

// Spawn creates an enemy of the given variant off-screen right
// Unknown variants return ErrUnknownVariant; anything but an itembox after the
// boss has entered returns ErrSpawnRefused. Neither creates an entity
func (m *EnemyManager) Spawn(v core.Variant) (*component.Enemy, error) {
	stats, err := Stats(v)
	if err != nil {
		return nil, err
	}
	if v != core.VariantItembox && m.bossSpawned {
		m.log.Debug().Stringer("variant", v).Msg("spawn refused, boss engaged")
		return nil, fmt.Errorf("spawn %s: %w", v, ErrSpawnRefused)
	}

	size := stats.SpriteSize
	if stats.Variance {
		size += m.rng.Float64() * parameter.SpawnSizeVariance
	}

	var y float64
	switch v {
	case core.VariantBoss:
	case core.VariantItembox:
		y = (m.rng.Float64() - 0.5) * (parameter.SpawnItemboxBand - size*0.5)
	default:
		y = (m.rng.Float64() - 0.5) * (parameter.SpawnBandHeight - size*0.5)
	}

	m.nextID++
	hp := stats.HP * m.difficulty
	e := &component.Enemy{
		ID:      m.nextID,
		Variant: v,
		State:   core.StateEntering,
		Pos:     mgl64.Vec2{parameter.SpawnOffsetX + size, y},
		HP:      hp,
		MaxHP:   hp,
		Speed:   stats.Speed,
		Radius:  stats.Radius,
		Damage:  stats.Damage,
		Score:   stats.Score,
		Size:    size,
		Scale:   1,
		Opacity: 1,
		Active:  true,
	}
	m.enemies = append(m.enemies, e)

	if v == core.VariantBoss {
		m.bossSpawned = true
		m.audio.PlayTrack(core.TrackBoss)
		m.log.Info().Float64("stage_time", m.stageTime).Float64("hp", hp).Msg("boss entered")
	} else {
		m.log.Debug().Uint64("id", e.ID).Stringer("variant", v).Float64("y", y).Msg("enemy spawned")
	}
	return e, nil
}

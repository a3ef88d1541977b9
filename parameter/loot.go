package parameter

// Item Pickups
const (
	ItemRadius       = 0.5
	ItemSpriteSize   = 0.75
	ItemDriftX       = -1.0
	ItemFlightSpeed  = 15.0
	ItemFadeDuration = 2.5
	ItemArriveDist   = 0.5
	ItemAnchorX      = 0.0
	ItemAnchorY      = 3.5
)

package assets

// Sprite bitmap slots assigned in sprites.yaml. Multi-part sprites list
// their quadrants in top-left, top-right, bottom-left, bottom-right order.
const (
	SpriteMarioStand uint16 = 0
	SpriteMarioWalk1 uint16 = 1
	SpriteMarioWalk2 uint16 = 2
	SpriteMarioJump  uint16 = 3
	SpriteMarioClimb uint16 = 4

	SpriteDonkeyKongFront uint16 = 8
	SpriteDonkeyKongBack  uint16 = 12

	SpritePaulineHead uint16 = 16
	SpritePaulineBody uint16 = 17
	SpritePaulineHelp uint16 = 18

	SpriteOilBarrel uint16 = 19
	SpriteOilFire1  uint16 = 20
	SpriteOilFire2  uint16 = 21
	SpriteBonus100  uint16 = 22
)

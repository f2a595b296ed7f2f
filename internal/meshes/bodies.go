// Package meshes holds the static placeholder weapon meshes and the
// keyword selector that picks between them. The eight bodies are fixed
// assets: downstream parity tests compare them byte for byte, so they must
// never be reformatted.
package meshes

// Kind identifies one of the eight placeholder bodies
type Kind string

// Placeholder body kinds
const (
	KindSword  Kind = "sword"
	KindAxe    Kind = "axe"
	KindStaff  Kind = "staff"
	KindDagger Kind = "dagger"
	KindMace   Kind = "mace"
	KindShield Kind = "shield"
	KindOrb    Kind = "orb"
	KindWand   Kind = "wand"
)

const swordBody = `# Sword Model
v -0.1 -1.0  0.0
v  0.1 -1.0  0.0
v  0.1  1.0  0.0
v -0.1  1.0  0.0
v -0.05 -1.0  0.05
v  0.05 -1.0  0.05
v  0.05  1.0  0.05
v -0.05  1.0  0.05
v -0.3 -1.2  0.0
v  0.3 -1.2  0.0
v  0.3 -1.0  0.0
v -0.3 -1.0  0.0

vt 0.0 0.0
vt 1.0 0.0
vt 1.0 1.0
vt 0.0 1.0

vn  0.0  0.0  1.0
vn  0.0  0.0 -1.0
vn  0.0  1.0  0.0
vn  0.0 -1.0  0.0

# Blade faces
f 1/1/1 2/2/1 3/3/1 4/4/1
f 5/1/2 8/4/2 7/3/2 6/2/2
f 1/1/3 5/2/3 6/3/3 2/4/3
f 2/1/4 6/2/4 7/3/4 3/4/4
f 3/1/1 7/2/1 8/3/1 4/4/1
f 5/1/2 1/2/2 4/3/2 8/4/2

# Guard/Hilt faces
f 9/1/1 10/2/1 11/3/1 12/4/1`

const axeBody = `# Axe Model
v -0.5 -1.0  0.0
v  0.5 -1.0  0.0
v  0.3  0.5  0.0
v -0.3  0.5  0.0
v -0.5 -1.0  0.1
v  0.5 -1.0  0.1
v  0.3  0.5  0.1
v -0.3  0.5  0.1
v -0.1 -1.5  0.0
v  0.1 -1.5  0.0
v  0.1 -1.0  0.0
v -0.1 -1.0  0.0

vt 0.0 0.0
vt 1.0 0.0
vt 1.0 1.0
vt 0.0 1.0

vn  0.0  0.0  1.0
vn  0.0  0.0 -1.0

# Axe head faces
f 1/1/1 2/2/1 3/3/1 4/4/1
f 5/1/2 8/4/2 7/3/2 6/2/2
f 1/1/1 5/2/1 6/3/1 2/4/1
f 2/1/1 6/2/1 7/3/1 3/4/1
f 3/1/1 7/2/1 8/3/1 4/4/1
f 4/1/1 8/2/1 5/3/1 1/4/1

# Handle faces
f 9/1/1 10/2/1 11/3/1 12/4/1`

const staffBody = `# Staff Model
v -0.05 -1.5  0.0
v  0.05 -1.5  0.0
v  0.05  1.5  0.0
v -0.05  1.5  0.0
v -0.05 -1.5  0.05
v  0.05 -1.5  0.05
v  0.05  1.5  0.05
v -0.05  1.5  0.05
v -0.2  1.5  0.0
v  0.2  1.5  0.0
v  0.2  1.8  0.0
v -0.2  1.8  0.0

vt 0.0 0.0
vt 1.0 0.0
vt 1.0 1.0
vt 0.0 1.0

vn  0.0  0.0  1.0
vn  0.0  0.0 -1.0

# Staff shaft
f 1/1/1 2/2/1 3/3/1 4/4/1
f 5/1/2 8/4/2 7/3/2 6/2/2
f 1/1/1 5/2/1 6/3/1 2/4/1
f 2/1/1 6/2/1 7/3/1 3/4/1
f 3/1/1 7/2/1 8/3/1 4/4/1
f 4/1/1 8/2/1 5/3/1 1/4/1

# Staff top
f 9/1/1 10/2/1 11/3/1 12/4/1`

const daggerBody = `# Dagger Model
v -0.05 -0.5  0.0
v  0.05 -0.5  0.0
v  0.05  0.5  0.0
v -0.05  0.5  0.0
v -0.02 -0.5  0.02
v  0.02 -0.5  0.02
v  0.02  0.5  0.02
v -0.02  0.5  0.02
v -0.1 -0.6  0.0
v  0.1 -0.6  0.0
v  0.1 -0.5  0.0
v -0.1 -0.5  0.0

vt 0.0 0.0
vt 1.0 0.0
vt 1.0 1.0
vt 0.0 1.0

vn  0.0  0.0  1.0
vn  0.0  0.0 -1.0

# Blade
f 1/1/1 2/2/1 3/3/1 4/4/1
f 5/1/2 8/4/2 7/3/2 6/2/2
f 1/1/1 5/2/1 6/3/1 2/4/1
f 2/1/1 6/2/1 7/3/1 3/4/1
f 3/1/1 7/2/1 8/3/1 4/4/1
f 4/1/1 8/2/1 5/3/1 1/4/1

# Hilt
f 9/1/1 10/2/1 11/3/1 12/4/1`

const maceBody = `# Mace Model
v -0.1 -1.0  0.0
v  0.1 -1.0  0.0
v  0.1  0.0  0.0
v -0.1  0.0  0.0
v -0.3  0.0  0.0
v  0.3  0.0  0.0
v  0.3  0.3  0.0
v -0.3  0.3  0.0
v -0.3  0.0  0.3
v  0.3  0.0  0.3
v  0.3  0.3  0.3
v -0.3  0.3  0.3

vt 0.0 0.0
vt 1.0 0.0
vt 1.0 1.0
vt 0.0 1.0

vn  0.0  0.0  1.0
vn  0.0  0.0 -1.0

# Handle
f 1/1/1 2/2/1 3/3/1 4/4/1

# Mace head
f 5/1/1 6/2/1 7/3/1 8/4/1
f 9/1/2 12/4/2 11/3/2 10/2/2
f 5/1/1 9/2/1 10/3/1 6/4/1
f 6/1/1 10/2/1 11/3/1 7/4/1
f 7/1/1 11/2/1 12/3/1 8/4/1
f 8/1/1 12/2/1 9/3/1 5/4/1`

const shieldBody = `# Shield Model
v -0.5 -0.8  0.0
v  0.5 -0.8  0.0
v  0.5  0.8  0.0
v -0.5  0.8  0.0
v -0.5 -0.8  0.1
v  0.5 -0.8  0.1
v  0.5  0.8  0.1
v -0.5  0.8  0.1

vt 0.0 0.0
vt 1.0 0.0
vt 1.0 1.0
vt 0.0 1.0

vn  0.0  0.0  1.0
vn  0.0  0.0 -1.0

# Shield faces
f 1/1/1 2/2/1 3/3/1 4/4/1
f 5/1/2 8/4/2 7/3/2 6/2/2
f 1/1/1 5/2/1 6/3/1 2/4/1
f 2/1/1 6/2/1 7/3/1 3/4/1
f 3/1/1 7/2/1 8/3/1 4/4/1
f 4/1/1 8/2/1 5/3/1 1/4/1`

const orbBody = `# Orb Model (Simplified Sphere)
v  0.0  0.3  0.0
v  0.2  0.0  0.0
v  0.0 -0.3  0.0
v -0.2  0.0  0.0
v  0.0  0.0  0.2
v  0.0  0.0 -0.2
v  0.1  0.1  0.1
v -0.1  0.1  0.1
v -0.1 -0.1  0.1
v  0.1 -0.1  0.1
v  0.1  0.1 -0.1
v -0.1  0.1 -0.1
v -0.1 -0.1 -0.1
v  0.1 -0.1 -0.1

vt 0.0 0.0
vt 1.0 0.0
vt 1.0 1.0
vt 0.0 1.0

vn  0.0  1.0  0.0
vn  0.0 -1.0  0.0

# Orb faces (simplified sphere)
f 1/1/1 7/2/1 8/3/1
f 1/1/1 8/3/1 12/4/1
f 2/1/1 7/2/1 10/3/1
f 3/1/2 9/2/2 10/3/2
f 4/1/2 8/2/2 9/3/2`

const wandBody = `# Wand Model
v -0.02 -0.8  0.0
v  0.02 -0.8  0.0
v  0.02  0.8  0.0
v -0.02  0.8  0.0
v -0.02 -0.8  0.02
v  0.02 -0.8  0.02
v  0.02  0.8  0.02
v -0.02  0.8  0.02
v -0.05  0.8  0.0
v  0.05  0.8  0.0
v  0.0   0.9  0.0

vt 0.0 0.0
vt 1.0 0.0
vt 1.0 1.0
vt 0.0 1.0

vn  0.0  0.0  1.0
vn  0.0  0.0 -1.0
vn  0.0  1.0  0.0

# Wand shaft
f 1/1/1 2/2/1 3/3/1 4/4/1
f 5/1/2 8/4/2 7/3/2 6/2/2
f 1/1/1 5/2/1 6/3/1 2/4/1
f 2/1/1 6/2/1 7/3/1 3/4/1
f 3/1/1 7/2/1 8/3/1 4/4/1
f 4/1/1 8/2/1 5/3/1 1/4/1

# Wand tip
f 9/1/3 10/2/3 11/3/3`

// bodies maps each kind to its fixed OBJ body
var bodies = map[Kind]string{
	KindSword:  swordBody,
	KindAxe:    axeBody,
	KindStaff:  staffBody,
	KindDagger: daggerBody,
	KindMace:   maceBody,
	KindShield: shieldBody,
	KindOrb:    orbBody,
	KindWand:   wandBody,
}

// Body returns the OBJ body for a kind, defaulting to the sword body
func Body(kind Kind) string {
	if body, ok := bodies[kind]; ok {
		return body
	}
	return swordBody
}

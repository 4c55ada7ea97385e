package core

// Entity identifies a scene body; 0 is "none" and doubles as the scene root
type Entity uint64

// Root is the parent of every unparented body
const Root Entity = 0

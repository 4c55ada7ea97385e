package event

import "strings"

var (
	nameToType = make(map[string]EventType)
	typeToName = make(map[EventType]string)
)

// registerType maps a string name to an EventType
func registerType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

func init() {
	registerType("Tick", EventTick)

	registerType("EventPressStart", EventPressStart)
	registerType("EventPressEnd", EventPressEnd)

	registerType("EventSpawnProjectile", EventSpawnProjectile)
	registerType("EventSpawnDebris", EventSpawnDebris)
	registerType("EventDespawn", EventDespawn)
	registerType("EventReparent", EventReparent)

	registerType("EventChargeStarted", EventChargeStarted)
	registerType("EventFired", EventFired)
	registerType("EventDebrisCollected", EventDebrisCollected)
	registerType("EventPlanetHit", EventPlanetHit)
	registerType("EventSecondaryHit", EventSecondaryHit)
	registerType("EventSunHit", EventSunHit)
	registerType("EventProjectileLost", EventProjectileLost)

	registerType("EventPhaseChanged", EventPhaseChanged)
	registerType("EventLevelSetup", EventLevelSetup)
}

// GetEventType returns the EventType for a given name
// The "Event" prefix is optional and "Tick" matches case-insensitively
func GetEventType(name string) (EventType, bool) {
	if strings.EqualFold(name, "Tick") {
		return EventTick, true
	}
	if et, ok := nameToType[name]; ok {
		return et, true
	}
	et, ok := nameToType["Event"+name]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "EventUnknown"
}

func (et EventType) String() string {
	return GetEventName(et)
}

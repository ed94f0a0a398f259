package completion

import (
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
)

// enumIndex returns the index of the static enum with the type passed in
// the packet, creating it if it does not exist yet. Options are
// deduplicated against the packet's shared enum value list.
func enumIndex(pk *packet.AvailableCommands, enumType string, options []string) uint32 {
	for i, e := range pk.Enums {
		if e.Type == enumType {
			return uint32(i)
		}
	}
	valueIndex := make(map[string]uint, len(pk.EnumValues))
	for i, v := range pk.EnumValues {
		valueIndex[v] = uint(i)
	}
	valueIndices := make([]uint, 0, len(options))
	for _, opt := range options {
		idx, ok := valueIndex[opt]
		if !ok {
			idx = uint(len(pk.EnumValues))
			pk.EnumValues = append(pk.EnumValues, opt)
			valueIndex[opt] = idx
		}
		valueIndices = append(valueIndices, idx)
	}
	pk.Enums = append(pk.Enums, protocol.CommandEnum{Type: enumType, ValueIndices: valueIndices})
	return uint32(len(pk.Enums) - 1)
}

// dynamicEnumIndex returns the index of the soft (dynamic) enum with the
// type passed, creating it if needed. An existing enum has its values
// refreshed with the latest list.
func dynamicEnumIndex(pk *packet.AvailableCommands, enumType string, options []string) uint32 {
	for i, e := range pk.DynamicEnums {
		if e.Type == enumType {
			pk.DynamicEnums[i].Values = options
			return uint32(i)
		}
	}
	pk.DynamicEnums = append(pk.DynamicEnums, protocol.DynamicEnum{Type: enumType, Values: options})
	return uint32(len(pk.DynamicEnums) - 1)
}

// enumParam builds a parameter referencing the enum at the index passed,
// soft (dynamic) or static.
func enumParam(name string, enumIndex uint32, soft, optional bool) protocol.CommandParameter {
	var t uint32 = protocol.CommandArgValid
	if soft {
		t |= protocol.CommandArgSoftEnum | enumIndex
	} else {
		t |= protocol.CommandArgEnum | enumIndex
	}
	return protocol.CommandParameter{
		Name:     name,
		Type:     t,
		Optional: optional,
		Options:  0,
	}
}

// textParam builds a raw text parameter swallowing the rest of the input.
func textParam(name string, optional bool) protocol.CommandParameter {
	return protocol.CommandParameter{
		Name:     name,
		Type:     protocol.CommandArgValid | protocol.CommandArgTypeRawText,
		Optional: optional,
		Options:  0,
	}
}

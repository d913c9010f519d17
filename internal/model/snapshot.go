package model

// Snapshot is one immutable view of the drawing's electrical content: the
// input every engine stage computes from. Engine stages never mutate a
// snapshot; the classifier and calculator return fresh copies.
type Snapshot struct {
	Devices     []Device     `json:"devices"`
	Conductors  []Conductor  `json:"conductors"`
	Layers      []Layer      `json:"layers,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

// Empty reports whether the snapshot carries no electrical content at all.
func (s Snapshot) Empty() bool {
	return len(s.Devices) == 0 && len(s.Conductors) == 0
}

// Clone returns a deep copy. Callers that toggle between physical and
// schematic views snapshot the physical model with Clone before synthesis
// and restore the copy afterwards.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{}
	if s.Devices != nil {
		out.Devices = make([]Device, len(s.Devices))
		copy(out.Devices, s.Devices)
	}
	if s.Conductors != nil {
		out.Conductors = make([]Conductor, len(s.Conductors))
		for i, c := range s.Conductors {
			cc := c
			if c.Endpoints != nil {
				cc.Endpoints = append(cc.Endpoints[:0:0], c.Endpoints...)
			}
			out.Conductors[i] = cc
		}
	}
	if s.Layers != nil {
		out.Layers = make([]Layer, len(s.Layers))
		copy(out.Layers, s.Layers)
	}
	if s.Annotations != nil {
		out.Annotations = make([]Annotation, len(s.Annotations))
		copy(out.Annotations, s.Annotations)
	}
	return out
}

// DeviceByID returns the device with the given ID, or false.
func (s Snapshot) DeviceByID(id string) (Device, bool) {
	for _, d := range s.Devices {
		if d.ID == id {
			return d, true
		}
	}
	return Device{}, false
}

// DevicesByCategory returns the devices of one category in input order.
func (s Snapshot) DevicesByCategory(cat Category) []Device {
	var out []Device
	for _, d := range s.Devices {
		if d.Category == cat {
			out = append(out, d)
		}
	}
	return out
}

// HasConductorRole reports whether any conductor carries the given role.
func (s Snapshot) HasConductorRole(role ConductorRole) bool {
	for _, c := range s.Conductors {
		if c.Role == role {
			return true
		}
	}
	return false
}

// HasAnnotationKind reports whether any annotation of the given kind exists.
func (s Snapshot) HasAnnotationKind(kind AnnotationKind) bool {
	for _, a := range s.Annotations {
		if a.Kind == kind {
			return true
		}
	}
	return false
}

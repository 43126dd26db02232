package module

import "viewlog/internal/services/records/domain"

// Ports exposed by the records module
type Ports struct {
	Ingest domain.IngestPort
	Read   domain.ReadPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

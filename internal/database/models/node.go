package models

// NodeKind identifies an entity's place in the corporation → tenant hierarchy.
type NodeKind string

const (
	NodeKindCorporation   NodeKind = "Corporation"
	NodeKindBuilding      NodeKind = "Building"
	NodeKindProperty      NodeKind = "Property"
	NodeKindTenancyPeriod NodeKind = "Tenancy Period"
	NodeKindTenant        NodeKind = "Tenant"
)

// Height returns the depth of the kind in the hierarchy, 0 for Corporation
// down to 4 for Tenant. Unknown kinds return -1.
func (k NodeKind) Height() int {
	switch k {
	case NodeKindCorporation:
		return 0
	case NodeKindBuilding:
		return 1
	case NodeKindProperty:
		return 2
	case NodeKindTenancyPeriod:
		return 3
	case NodeKindTenant:
		return 4
	}
	return -1
}

// IsValid checks if the NodeKind is one of the five hierarchy kinds
func (k NodeKind) IsValid() bool {
	return k.Height() >= 0
}

// Node is implemented by every entity in the hierarchy so that generic
// reporting and tree-walking code can treat mixed entity types uniformly.
type Node interface {
	NodeKind() NodeKind
	NodeHeight() int
}

// NodeKind returns the hierarchy kind for Corporation
func (Corporation) NodeKind() NodeKind { return NodeKindCorporation }

// NodeHeight returns the hierarchy height for Corporation
func (Corporation) NodeHeight() int { return NodeKindCorporation.Height() }

// NodeKind returns the hierarchy kind for Building
func (Building) NodeKind() NodeKind { return NodeKindBuilding }

// NodeHeight returns the hierarchy height for Building
func (Building) NodeHeight() int { return NodeKindBuilding.Height() }

// NodeKind returns the hierarchy kind for Property
func (Property) NodeKind() NodeKind { return NodeKindProperty }

// NodeHeight returns the hierarchy height for Property
func (Property) NodeHeight() int { return NodeKindProperty.Height() }

// NodeKind returns the hierarchy kind for TenancyPeriod
func (TenancyPeriod) NodeKind() NodeKind { return NodeKindTenancyPeriod }

// NodeHeight returns the hierarchy height for TenancyPeriod
func (TenancyPeriod) NodeHeight() int { return NodeKindTenancyPeriod.Height() }

// NodeKind returns the hierarchy kind for Tenant
func (Tenant) NodeKind() NodeKind { return NodeKindTenant }

// NodeHeight returns the hierarchy height for Tenant
func (Tenant) NodeHeight() int { return NodeKindTenant.Height() }

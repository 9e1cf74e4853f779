package contracts

import "github.com/bharath-541/FinSight/internal/domain/networth"

type NetWorthResponse struct {
	NetWorth *networth.Current `json:"netWorth"`
}

type SnapshotResponse struct {
	Message  string             `json:"message,omitempty"`
	Snapshot *networth.Snapshot `json:"snapshot"`
}

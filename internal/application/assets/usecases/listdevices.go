package usecases

import (
	"context"
	"fmt"

	"pulseboard/internal/domain/assets"
	"pulseboard/internal/domain/tenant"
	"pulseboard/internal/shared/logger"
)

type DeviceView struct {
	ID          int     `json:"id"`
	SystemName  string  `json:"systemName"`
	OrgID       int     `json:"orgId"`
	OrgName     string  `json:"orgName"`
	Online      bool    `json:"online"`
	OS          *string `json:"os"`
	LastContact *string `json:"lastContact"`
}

type DeviceListing struct {
	Total   int          `json:"total"`
	Online  int          `json:"online"`
	Offline int          `json:"offline"`
	Devices []DeviceView `json:"devices"`
}

type ListDevicesCommand struct {
	Role         assets.DeviceRole
	Restrictions *tenant.RestrictionSet
}

// ListDevicesUseCase serves the servers and workstations pages from
// live RMM data, filtered to the caller's mapped organizations.
type ListDevicesUseCase struct {
	fetcher RMMFetcher
	logger  logger.Interface
}

func NewListDevicesUseCase(fetcher RMMFetcher, logger logger.Interface) *ListDevicesUseCase {
	return &ListDevicesUseCase{
		fetcher: fetcher,
		logger:  logger,
	}
}

func (uc *ListDevicesUseCase) Execute(ctx context.Context, cmd ListDevicesCommand) (*DeviceListing, error) {
	listing := &DeviceListing{Devices: []DeviceView{}}
	if cmd.Restrictions.Empty() {
		return listing, nil
	}

	allowed := map[int]struct{}{}
	if !cmd.Restrictions.Unrestricted {
		for _, orgID := range cmd.Restrictions.RMMOrgIDs {
			allowed[orgID] = struct{}{}
		}
		if len(allowed) == 0 {
			return listing, nil
		}
	}

	devices, err := uc.fetcher.FetchDevices(ctx)
	if err != nil {
		uc.logger.Errorw("failed to fetch devices", "error", err)
		return nil, fmt.Errorf("failed to fetch devices: %w", err)
	}

	orgNames := map[int]string{}
	orgs, err := uc.fetcher.FetchOrganizations(ctx)
	if err != nil {
		uc.logger.Warnw("failed to fetch organizations, org names unavailable", "error", err)
	} else {
		for _, org := range orgs {
			orgNames[org.ID] = org.Name
		}
	}

	for _, device := range devices {
		if device.Role != cmd.Role {
			continue
		}
		if !cmd.Restrictions.Unrestricted {
			if _, ok := allowed[device.OrgID]; !ok {
				continue
			}
		}

		view := DeviceView{
			ID:         device.ID,
			SystemName: device.SystemName,
			OrgID:      device.OrgID,
			OrgName:    orgNames[device.OrgID],
			Online:     device.Online,
			OS:         device.OS,
		}
		if device.LastContact != nil {
			formatted := device.LastContact.UTC().Format("2006-01-02T15:04:05Z07:00")
			view.LastContact = &formatted
		}

		listing.Devices = append(listing.Devices, view)
		listing.Total++
		if device.Online {
			listing.Online++
		} else {
			listing.Offline++
		}
	}

	return listing, nil
}

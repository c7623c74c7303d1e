// Package model contains the persistence document layouts. Field names
// stay compatible with the documents already in the creators collection.
package model

import (
	"time"

	"wick/internal/domain/entity"
)

// PlatformLinkModel is one entry of the stored social link list.
type PlatformLinkModel struct {
	Platform string `firestore:"platform"`
	URL      string `firestore:"url"`
}

// ListingModel mirrors a document of the public creators collection.
// CreatedAt carries the serverTimestamp option: the store assigns it on
// write, never the client.
type ListingModel struct {
	OwnerID     string              `firestore:"userId"`
	DisplayName string              `firestore:"robloxUsername"`
	PriceRobux  int                 `firestore:"priceRobux"`
	Bio         string              `firestore:"bio"`
	AvatarURL   string              `firestore:"avatarUrl"`
	Links       []PlatformLinkModel `firestore:"platformLinks"`
	ContactInfo string              `firestore:"contactEmailOrDiscord"`
	Status      string              `firestore:"status"`
	CreatedAt   time.Time           `firestore:"createdAt,serverTimestamp"`
}

// FromEntity maps a domain listing onto its document layout.
func FromEntity(listing *entity.Listing) *ListingModel {
	links := make([]PlatformLinkModel, 0, len(listing.Links))
	for _, link := range listing.Links {
		links = append(links, PlatformLinkModel{
			Platform: string(link.Platform),
			URL:      link.URL,
		})
	}

	return &ListingModel{
		OwnerID:     listing.OwnerID,
		DisplayName: listing.DisplayName,
		PriceRobux:  listing.PriceRobux,
		Bio:         listing.Bio,
		AvatarURL:   listing.AvatarURL,
		Links:       links,
		ContactInfo: listing.ContactInfo,
		Status:      string(listing.Status),
	}
}

// ToEntity maps a stored document back to the domain listing. The document
// identifier lives outside the document body and is passed in.
func (m *ListingModel) ToEntity(id string) entity.Listing {
	links := make([]entity.PlatformLink, 0, len(m.Links))
	for _, link := range m.Links {
		links = append(links, entity.PlatformLink{
			Platform: entity.Platform(link.Platform),
			URL:      link.URL,
		})
	}

	return entity.Listing{
		ID:          id,
		OwnerID:     m.OwnerID,
		DisplayName: m.DisplayName,
		PriceRobux:  m.PriceRobux,
		Bio:         m.Bio,
		AvatarURL:   m.AvatarURL,
		Links:       links,
		ContactInfo: m.ContactInfo,
		Status:      entity.ListingStatus(m.Status),
		CreatedAt:   m.CreatedAt,
	}
}

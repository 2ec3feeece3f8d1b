package profile

import (
	"pronet-api/internal/domain/profile"
)

func ToResponseProfile(pDomain profile.Profile) Profile {
	var p = Profile{
		UserUUID:   pDomain.UserUUID,
		Name:       pDomain.Name,
		Avatar:     pDomain.Avatar,
		Title:      pDomain.Title,
		Location:   pDomain.Location,
		Bio:        pDomain.Bio,
		Skills:     pDomain.Skills,
		Experience: pDomain.Experience,
		Education:  pDomain.Education,
		Contact:    pDomain.Contact,
		Social:     pDomain.Social,
		Activity:   pDomain.Activity,
	}

	return p
}

func ToDomainProfile(pRequest Request) profile.Profile {
	var p = profile.Profile{
		Name:       pRequest.Name,
		Title:      pRequest.Title,
		Location:   pRequest.Location,
		Bio:        pRequest.Bio,
		Skills:     pRequest.Skills,
		Experience: pRequest.Experience,
		Education:  pRequest.Education,
		Contact:    pRequest.Contact,
		Social:     pRequest.Social,
		Activity:   pRequest.Activity,
	}

	return p
}

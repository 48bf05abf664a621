package model

import "errors"

var ErrMissingImage = errors.New("no food image available")

// RepresentativeImage returns the first image of the first food that has any image.
// Foods and their images are expected in id order.
func RepresentativeImage(foods []*Food) (string, error) {
	for _, food := range foods {
		if food == nil {
			continue
		}

		for _, image := range food.Images {
			if image.ImageURL != "" {
				return image.ImageURL, nil
			}
		}
	}

	return "", ErrMissingImage
}

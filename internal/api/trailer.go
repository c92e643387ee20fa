package api

import "github.com/alvarorichard/cineflux/internal/models"

// SelectTrailer picks the video to play for a movie: the first official
// YouTube trailer, else the first video of any kind, else nothing.
func SelectTrailer(videos []models.Video) (models.Video, bool) {
	for _, v := range videos {
		if v.IsYouTubeTrailer() {
			return v, true
		}
	}
	if len(videos) > 0 {
		return videos[0], true
	}
	return models.Video{}, false
}

package models

// Video types and sites as reported by TMDB
const (
	VideoTypeTrailer = "Trailer"
	VideoTypeTeaser  = "Teaser"
	VideoSiteYouTube = "YouTube"
)

// Video represents a trailer, teaser or clip attached to a movie
type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Type string `json:"type"`
	Site string `json:"site"`
}

// VideoList is the envelope returned by the videos endpoint
type VideoList struct {
	ID      int     `json:"id"`
	Results []Video `json:"results"`
}

// IsYouTubeTrailer reports whether the video is an official YouTube trailer
func (v *Video) IsYouTubeTrailer() bool {
	return v.Type == VideoTypeTrailer && v.Site == VideoSiteYouTube
}

// GetEmbedURL returns the autoplaying YouTube embed URL
func (v *Video) GetEmbedURL() string {
	return "https://www.youtube.com/embed/" + v.Key + "?autoplay=1"
}

// GetWatchURL returns the regular YouTube watch URL
func (v *Video) GetWatchURL() string {
	return "https://www.youtube.com/watch?v=" + v.Key
}

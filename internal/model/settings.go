package model

// DisplayedTopBarStat is a user statistic that can be pinned to the top bar
type DisplayedTopBarStat string

const (
	TopBarUploaded           DisplayedTopBarStat = "uploaded"
	TopBarDownloaded         DisplayedTopBarStat = "downloaded"
	TopBarRatio              DisplayedTopBarStat = "ratio"
	TopBarTorrents           DisplayedTopBarStat = "torrents"
	TopBarForumPosts         DisplayedTopBarStat = "forum_posts"
	TopBarSeeding            DisplayedTopBarStat = "seeding"
	TopBarLeeching           DisplayedTopBarStat = "leeching"
	TopBarSeedingSize        DisplayedTopBarStat = "seeding_size"
	TopBarAverageSeedingTime DisplayedTopBarStat = "average_seeding_time"
	TopBarBonusPoints        DisplayedTopBarStat = "bonus_points"
	TopBarFreeleechTokens    DisplayedTopBarStat = "freeleech_tokens"
	TopBarCurrentStreak      DisplayedTopBarStat = "current_streak"
)

// DisplayableUserStat is a statistic that may appear on user profiles
type DisplayableUserStat string

const (
	UserStatUploaded           DisplayableUserStat = "uploaded"
	UserStatRealUploaded       DisplayableUserStat = "real_uploaded"
	UserStatDownloaded         DisplayableUserStat = "downloaded"
	UserStatRealDownloaded     DisplayableUserStat = "real_downloaded"
	UserStatRatio              DisplayableUserStat = "ratio"
	UserStatTitleGroups        DisplayableUserStat = "title_groups"
	UserStatEditionGroups      DisplayableUserStat = "edition_groups"
	UserStatTorrents           DisplayableUserStat = "torrents"
	UserStatForumPosts         DisplayableUserStat = "forum_posts"
	UserStatForumThreads       DisplayableUserStat = "forum_threads"
	UserStatTitleGroupComments DisplayableUserStat = "title_group_comments"
	UserStatRequestComments    DisplayableUserStat = "request_comments"
	UserStatArtistComments     DisplayableUserStat = "artist_comments"
	UserStatSeeding            DisplayableUserStat = "seeding"
	UserStatLeeching           DisplayableUserStat = "leeching"
	UserStatSnatched           DisplayableUserStat = "snatched"
	UserStatSeedingSize        DisplayableUserStat = "seeding_size"
	UserStatRequestsFilled     DisplayableUserStat = "requests_filled"
	UserStatCollagesStarted    DisplayableUserStat = "collages_started"
	UserStatRequestsVoted      DisplayableUserStat = "requests_voted"
	UserStatAverageSeedingTime DisplayableUserStat = "average_seeding_time"
	UserStatInvited            DisplayableUserStat = "invited"
	UserStatInvitations        DisplayableUserStat = "invitations"
	UserStatBonusPoints        DisplayableUserStat = "bonus_points"
	UserStatFreeleechTokens    DisplayableUserStat = "freeleech_tokens"
	UserStatCurrentStreak      DisplayableUserStat = "current_streak"
	UserStatHighestStreak      DisplayableUserStat = "highest_streak"
)

// TorrentRequestVoteCurrency is a currency users may pledge on requests
type TorrentRequestVoteCurrency string

const (
	VoteCurrencyUpload      TorrentRequestVoteCurrency = "upload"
	VoteCurrencyBonusPoints TorrentRequestVoteCurrency = "bonus_points"
)

// PublicArcadiaSettings is the site configuration exposed to every visitor.
// Factors are percentages.
type PublicArcadiaSettings struct {
	OpenSignups                  bool                         `json:"open_signups"`
	GlobalDownloadFactor         int                          `json:"global_download_factor"`
	GlobalUploadFactor           int                          `json:"global_upload_factor"`
	LogoSubtitle                 *string                      `json:"logo_subtitle"`
	BonusPointsAlias             string                       `json:"bonus_points_alias"`
	BonusPointsDecimalPlaces     int                          `json:"bonus_points_decimal_places"`
	DisplayedTopBarStats         []DisplayedTopBarStat        `json:"displayed_top_bar_stats"`
	DisplayableUserStats         []DisplayableUserStat        `json:"displayable_user_stats"`
	TorrentRequestVoteCurrencies []TorrentRequestVoteCurrency `json:"torrent_request_vote_currencies"`
	EmailsEnabled                bool                         `json:"emails_enabled"`
	DisplayImageHostDragAndDrop  bool                         `json:"display_image_host_drag_and_drop"`
}

// Clone returns a deep copy so callers never share slices with the original
func (s PublicArcadiaSettings) Clone() PublicArcadiaSettings {
	c := s
	if s.LogoSubtitle != nil {
		subtitle := *s.LogoSubtitle
		c.LogoSubtitle = &subtitle
	}
	c.DisplayedTopBarStats = append([]DisplayedTopBarStat{}, s.DisplayedTopBarStats...)
	c.DisplayableUserStats = append([]DisplayableUserStat{}, s.DisplayableUserStats...)
	c.TorrentRequestVoteCurrencies = append([]TorrentRequestVoteCurrency{}, s.TorrentRequestVoteCurrencies...)
	return c
}

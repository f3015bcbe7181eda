package chatcache

import (
	"reflect"
	"time"
)

// Guild is the cache's own projection of a guild payload — deliberately
// not an alias of whatever the gateway decoded, the same way the
// original Rust cache's CachedGuild (original_source/cache/in-memory/src/lib.rs)
// is a distinct type from twilight_model::guild::Guild. It never embeds
// its channels/roles/members/etc.; those live only in the reverse
// indices (spec.md §3).
type Guild struct {
	ID                          GuildID
	Name                        string
	OwnerID                     UserID
	Owner                       bool
	Permissions                 int64
	Region                      string
	AFKChannelID                ChannelID
	AFKTimeout                  int
	EmbedEnabled                bool
	EmbedChannelID              ChannelID
	VerificationLevel           int
	DefaultMessageNotifications int
	ExplicitContentFilter       int
	Features                    []string
	MFALevel                    int
	ApplicationID               UserID
	WidgetEnabled               bool
	WidgetChannelID             ChannelID
	SystemChannelID             ChannelID
	SystemChannelFlags          int
	RulesChannelID              ChannelID
	JoinedAt                    time.Time
	Large                       bool
	MemberCount                 int
	Icon                        string
	Splash                      string
	DiscoverySplash             string
	Banner                      string
	PreferredLocale             string
	PremiumTier                 int
	PremiumSubscriptionCount    int
	MaxMembers                  int
	MaxPresences                int
	VanityURLCode               string
	Description                 string
}

// Equal reports structural equality, the basis for upsertGuildItem's and
// upsertItem's no-op-on-unchanged-value short circuit (spec.md §4.2).
func (g *Guild) Equal(other *Guild) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g == other {
		return true
	}
	a, b := *g, *other
	a.Features, b.Features = nil, nil
	if len(g.Features) != len(other.Features) {
		return false
	}
	for i := range g.Features {
		if g.Features[i] != other.Features[i] {
			return false
		}
	}
	return reflect.DeepEqual(a, b)
}

// GuildUpdateOverlay carries the subset of guild fields a GUILD_UPDATE
// event may supply. Pointer fields are nil when the field was omitted
// from the payload; the handler (handlers_guild.go) only overlays fields
// that are present, per spec.md §4.5.
type GuildUpdateOverlay struct {
	ID                          GuildID
	Name                        *string
	OwnerID                     *UserID
	Owner                       *bool
	Permissions                 *int64
	Region                      *string
	AFKChannelID                *ChannelID
	AFKTimeout                  *int
	VerificationLevel           *int
	DefaultMessageNotifications *int
	ExplicitContentFilter       *int
	Features                    []string
	MFALevel                    *int
	WidgetEnabled               *bool
	WidgetChannelID             *ChannelID
	SystemChannelID             *ChannelID
	Icon                        *string
	Splash                      *string
	DiscoverySplash             *string
	Banner                      *string
	PreferredLocale             *string
	PremiumTier                 *int
	// PremiumSubscriptionCount and MaxPresences are documented with
	// defaults when omitted (spec.md §4.5): 0 and 25000 respectively.
	// nil here still means "omitted"; the handler applies the default.
	PremiumSubscriptionCount *int
	MaxPresences             *int
	VanityURLCode            *string
}

const (
	defaultMaxPresences             = 25000
	defaultPremiumSubscriptionCount = 0
)

// applyGuildOverlay mutates g in place, overlaying every present field
// from o (spec.md §4.5). Callers are expected to have already cloned g.
func applyGuildOverlay(g *Guild, o GuildUpdateOverlay) {
	if o.Name != nil {
		g.Name = *o.Name
	}
	if o.OwnerID != nil {
		g.OwnerID = *o.OwnerID
	}
	if o.Owner != nil {
		g.Owner = *o.Owner
	}
	if o.Permissions != nil {
		g.Permissions = *o.Permissions
	}
	if o.Region != nil {
		g.Region = *o.Region
	}
	if o.AFKChannelID != nil {
		g.AFKChannelID = *o.AFKChannelID
	}
	if o.AFKTimeout != nil {
		g.AFKTimeout = *o.AFKTimeout
	}
	if o.VerificationLevel != nil {
		g.VerificationLevel = *o.VerificationLevel
	}
	if o.DefaultMessageNotifications != nil {
		g.DefaultMessageNotifications = *o.DefaultMessageNotifications
	}
	if o.ExplicitContentFilter != nil {
		g.ExplicitContentFilter = *o.ExplicitContentFilter
	}
	if o.Features != nil {
		g.Features = o.Features
	}
	if o.MFALevel != nil {
		g.MFALevel = *o.MFALevel
	}
	if o.WidgetEnabled != nil {
		g.WidgetEnabled = *o.WidgetEnabled
	}
	if o.WidgetChannelID != nil {
		g.WidgetChannelID = *o.WidgetChannelID
	}
	if o.SystemChannelID != nil {
		g.SystemChannelID = *o.SystemChannelID
	}
	if o.Icon != nil {
		g.Icon = *o.Icon
	}
	if o.Splash != nil {
		g.Splash = *o.Splash
	}
	if o.DiscoverySplash != nil {
		g.DiscoverySplash = *o.DiscoverySplash
	}
	if o.Banner != nil {
		g.Banner = *o.Banner
	}
	if o.PreferredLocale != nil {
		g.PreferredLocale = *o.PreferredLocale
	}
	if o.PremiumTier != nil {
		g.PremiumTier = *o.PremiumTier
	}
	if o.VanityURLCode != nil {
		g.VanityURLCode = *o.VanityURLCode
	}

	if o.PremiumSubscriptionCount != nil {
		g.PremiumSubscriptionCount = *o.PremiumSubscriptionCount
	} else {
		g.PremiumSubscriptionCount = defaultPremiumSubscriptionCount
	}
	if o.MaxPresences != nil {
		g.MaxPresences = *o.MaxPresences
	} else {
		g.MaxPresences = defaultMaxPresences
	}
}

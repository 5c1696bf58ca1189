package constant

// Prop keys understood by the screens.
const (
	PropPeerID    = "peerId"
	PropHelpTopic = "topic"
)

// Help topics.
const (
	TopicProject = "project"
	TopicPeers   = "peers"
)

const AppLogo = `
  _ __   ___  ___ _ ____   _(_) _____      __
 | '_ \ / _ \/ _ \ '__\ \ / / |/ _ \ \ /\ / /
 | |_) |  __/  __/ |   \ V /| |  __/\ V  V /
 | .__/ \___|\___|_|    \_/ |_|\___| \_/\_/
 |_|
`

package domain

import "time"

// ProfileRecord is the stored form of a user's social state. Relationship
// sets hold account IDs, not usernames. Invariant, per ordered pair (A,B):
// at most one of Friends, SentRequests, ReceivedRequests contains the
// counterpart, Friends is symmetric between the two records, and SentRequests
// on one side is mirrored by ReceivedRequests on the other.
type ProfileRecord struct {
	Bio              string    `json:"bio"`
	Status           string    `json:"status"`
	Friends          []string  `json:"friends"`
	SentRequests     []string  `json:"sentRequests"`
	ReceivedRequests []string  `json:"receivedRequests"`
	Favorites        []string  `json:"favorites"`
	ProfilePicture   string    `json:"profilePicture,omitempty"`
	JoinDate         time.Time `json:"joinDate"`
}

// Profile is the resolved, display form of a ProfileRecord: relationship
// sets carry usernames.
type Profile struct {
	Username         string    `json:"username"`
	Bio              string    `json:"bio"`
	Status           string    `json:"status"`
	Friends          []string  `json:"friends"`
	SentRequests     []string  `json:"sentRequests"`
	ReceivedRequests []string  `json:"receivedRequests"`
	Favorites        []string  `json:"favorites"`
	ProfilePicture   string    `json:"profilePicture,omitempty"`
	JoinDate         time.Time `json:"joinDate"`
}

package types

// Cluster is the resolved active cluster a request is issued against.
type Cluster struct {
	// Name of the cluster entry in the configuration.
	Name string

	// Server is the base URL of the cluster API, e.g. "https://api.example.com:6443".
	Server string
}

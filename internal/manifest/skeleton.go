package manifest

import "forgeport/internal/descriptor"

// NewSkeleton builds the minimal valid manifest for a descriptor: the
// placeholder app ID, the Connect identity, the default runtime, and a
// single "connect" remote pointing at the descriptor's base URL. The
// conversion engine fills in everything else.
func NewSkeleton(desc *descriptor.Descriptor) *Manifest {
	return &Manifest{
		App: App{
			ID: AppIDPlaceholder,
			Connect: Connect{
				Key:    desc.Key,
				Remote: RemoteKeyConnect,
			},
			Runtime: Runtime{Name: RuntimeName},
		},
		Remotes: []Remote{
			{Key: RemoteKeyConnect, BaseURL: desc.BaseURL},
		},
		ConnectModules: make(map[string][]map[string]interface{}),
		Permissions:    Permissions{Scopes: []string{}},
	}
}

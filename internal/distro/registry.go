package distro

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dawnmagnet/mirrorgen/internal/models"
)

// registry is the fixed table of supported distros. Entries are added by
// extending this table, never at runtime.
var registry = map[string]models.DistroConfig{
	"rockylinux": {
		Base:            "rockylinux",
		BaseURL:         "http://dl.rockylinux.org/$contentdir",
		MirrorURL:       "https://mirrors.ustc.edu.cn/rocky",
		Pattern:         []string{"/etc/yum.repos.d/rocky*.repo", "/etc/yum.repos.d/Rocky*.repo"},
		EnableCRB:       true,
		EnableRPMFusion: true,
		EnableEPEL:      true,
		ImagePath:       "quay.io/rockylinux/rockylinux",
	},
	"almalinux": {
		Base:            "almalinux",
		BaseURL:         "https://repo.almalinux.org",
		MirrorURL:       "https://mirrors.aliyun.com",
		Pattern:         []string{"/etc/yum.repos.d/almalinux*.repo"},
		EnableCRB:       true,
		EnableRPMFusion: true,
		EnableEPEL:      true,
	},
	"centos": {
		Base:            "centos",
		BaseURL:         "http://mirror.centos.org/",
		MirrorURL:       "https://mirrors.ustc.edu.cn/centos-vault/",
		Pattern:         []string{"/etc/yum.repos.d/CentOS-*.repo"},
		EnableCRB:       false,
		EnableRPMFusion: true,
		EnableEPEL:      true,
	},
	"ubi": {
		Base:            "ubi",
		BaseURL:         "https://cdn-ubi.redhat.com/content/public/ubi",
		MirrorURL:       "https://mirrors.aliyun.com/rockylinux", // UBI often uses Rocky/Alma mirrors for extra packages
		Pattern:         []string{"/etc/yum.repos.d/ubi.repo"},
		EnableCRB:       true,
		EnableRPMFusion: true,
		EnableEPEL:      true,
		ImagePath:       "registry.access.redhat.com/ubi8/ubi", // adjusted to the requested major version at render time
	},
}

// Lookup returns the configuration for name. The name is trimmed and
// lowercased before the lookup; a miss reports the supported set.
func Lookup(name string) (models.DistroConfig, error) {
	cfg, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return models.DistroConfig{}, &models.GenError{
			Type: models.ErrUnknownDistro,
			Err:  fmt.Errorf("unsupported distro '%s'. Supported: %s", name, strings.Join(Names(), ", ")),
		}
	}
	return cfg, nil
}

// Names returns the supported distro names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseReference splits image into (distro, version). The split happens on
// the last colon so a registry-qualified name keeps its port; the distro
// part is lowercased and both parts are trimmed.
func ParseReference(image string) (string, string, error) {
	idx := strings.LastIndex(image, ":")
	if idx < 0 {
		return "", "", &models.GenError{
			Type: models.ErrInvalidImage,
			Err:  fmt.Errorf("image must be in the form '<distro>:<version>'"),
		}
	}

	name := strings.ToLower(strings.TrimSpace(image[:idx]))
	version := strings.TrimSpace(image[idx+1:])
	if name == "" || version == "" {
		return "", "", &models.GenError{
			Type: models.ErrInvalidImage,
			Err:  fmt.Errorf("invalid image name '%s'", image),
		}
	}

	return name, version, nil
}

package recipe

import (
	"fmt"
	"strings"

	"github.com/dawnmagnet/mirrorgen/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	maintainer = "DawnMagnet"

	rpmfusionRoot = "https://mirrors.ustc.edu.cn/rpmfusion"
	epelRoot      = "https://mirrors.ustc.edu.cn/epel/"
	ubiRockyRoot  = "https://mirrors.ustc.edu.cn/rocky"
	ubiRegistry   = "registry.access.redhat.com"
)

// params carries the resolved inputs for one rendering pass.
type params struct {
	cfg     models.DistroConfig
	distro  string
	version string
	major   string
	mirror  string
}

// A step emits the shell commands it contributes to the RUN instruction,
// or nothing when its feature flag is off. Steps run in a fixed order.
type step func(p params) []string

var steps = []step{
	// Unmatched globs must vanish instead of reaching sed literally.
	func(params) []string { return []string{"shopt -s nullglob"} },
	rewriteRepos,
	func(params) []string {
		return []string{"(command -v dnf >/dev/null 2>&1 || (yum install -y dnf && hash -r))"}
	},
	installRPMFusion,
	enableCRB,
	rewriteRPMFusion,
	rewriteEPEL,
	func(params) []string { return []string{"dnf clean all"} },
}

// Render produces the Dockerfile text for cfg at version. mirror overrides
// the distro's default mirror URL when non-empty. Output is deterministic:
// identical inputs yield byte-identical text.
func Render(cfg models.DistroConfig, distro, version, mirror string) string {
	if mirror == "" {
		mirror = cfg.MirrorURL
	}
	p := params{
		cfg:     cfg,
		distro:  distro,
		version: version,
		major:   ExtractMajorVersion(version),
		mirror:  mirror,
	}
	logrus.Debugf("Rendering %s:%s (major %s) with mirror %s", distro, version, p.major, mirror)

	var commands []string
	for _, s := range steps {
		commands = append(commands, s(p)...)
	}
	runLine := "RUN " + strings.Join(commands, " && \\\n    ")

	return fmt.Sprintf("FROM %s\nLABEL maintainer=%q\n%s\n", imageReference(p), maintainer, runLine)
}

// imageReference resolves the FROM line. UBI images are published per major
// version, so the repository path is derived from the tag.
func imageReference(p params) string {
	if p.distro == "ubi" {
		return fmt.Sprintf("%s/ubi%s/ubi:%s", ubiRegistry, p.major, p.version)
	}
	if p.cfg.ImagePath != "" {
		return fmt.Sprintf("%s:%s", p.cfg.ImagePath, p.version)
	}
	return fmt.Sprintf("%s:%s", p.cfg.Base, p.version)
}

// rewriteRepos comments out mirrorlist= directives and points baseurl=
// lines (commented or not) at the resolved mirror, in place across the
// configured repo-file globs.
func rewriteRepos(p params) []string {
	if p.distro == "ubi" {
		return ubiRepos(p)
	}
	return []string{fmt.Sprintf(
		"sed -e 's|^mirrorlist=|#mirrorlist=|g' -e 's|^#\\? \\?baseurl=%s|baseurl=%s|g' -i.bak %s",
		p.cfg.BaseURL, p.mirror, strings.Join(p.cfg.Pattern, " "))}
}

// ubiRepos replaces the restricted Red Hat repos with a Rocky mirror repo:
// UBI images only ship a narrow package set, so the subscription-manager
// plugin is disabled and dnf is pointed at Rocky BaseOS/AppStream instead.
func ubiRepos(p params) []string {
	repoContent := fmt.Sprintf(`[baseos]
name=Rocky Linux %[1]s - BaseOS
baseurl=%[2]s/%[3]s/BaseOS/$basearch/os/
gpgcheck=1
enabled=1
gpgkey=file:///etc/pki/rpm-gpg/RPM-GPG-KEY-rockyofficial

[appstream]
name=Rocky Linux %[1]s - AppStream
baseurl=%[2]s/%[3]s/AppStream/$basearch/os/
gpgcheck=1
enabled=1
gpgkey=file:///etc/pki/rpm-gpg/RPM-GPG-KEY-rockyofficial`, p.major, ubiRockyRoot, p.version)

	return []string{
		"sed -i 's/enabled=1/enabled=0/g' /etc/yum/pluginconf.d/subscription-manager.conf",
		"rm -f /etc/yum.repos.d/ubi.repo",
		fmt.Sprintf("echo -e '%s' > /etc/yum.repos.d/rocky-mirror.repo",
			strings.ReplaceAll(repoContent, "\n", "\\n")),
	}
}

func installRPMFusion(p params) []string {
	if !p.cfg.EnableRPMFusion {
		return nil
	}
	free := fmt.Sprintf("%s/free/el/rpmfusion-free-release-%s.noarch.rpm", rpmfusionRoot, p.major)
	nonfree := fmt.Sprintf("%s/nonfree/el/rpmfusion-nonfree-release-%s.noarch.rpm", rpmfusionRoot, p.major)
	return []string{fmt.Sprintf("dnf install -y %s %s", free, nonfree)}
}

// enableCRB turns on the CRB repository component. EL8 ships it as
// "powertools" without the crb helper command.
func enableCRB(p params) []string {
	if !p.cfg.EnableCRB {
		return nil
	}
	if p.major == "8" {
		return []string{"dnf install -y 'dnf-command(config-manager)' && dnf config-manager --set-enabled powertools || true"}
	}
	return []string{"if command -v crb >/dev/null 2>&1; then crb enable; fi"}
}

// rewriteRPMFusion points the just-installed RPM Fusion repos at the
// mirror root.
func rewriteRPMFusion(p params) []string {
	if !p.cfg.EnableRPMFusion {
		return nil
	}
	return []string{fmt.Sprintf(
		"sed -e 's|^metalink=|#metalink=|g' -e 's|^#baseurl=http://download1.rpmfusion.org|baseurl=%s|g' -i.bak /etc/yum.repos.d/rpmfusion*.repo",
		rpmfusionRoot)}
}

// rewriteEPEL points the EPEL repos at the mirror root, matching both
// upstream URL forms that appear in shipped repo files.
func rewriteEPEL(p params) []string {
	if !p.cfg.EnableEPEL {
		return nil
	}
	return []string{fmt.Sprintf(
		"sed -e 's|^metalink=|#metalink=|g' -e 's|^#baseurl=https\\?://download.fedoraproject.org/pub/epel/|baseurl=%[1]s|g' -e 's|^#baseurl=https\\?://download.example/pub/epel/|baseurl=%[1]s|g' -i.bak /etc/yum.repos.d/epel{,-testing}.repo",
		epelRoot)}
}

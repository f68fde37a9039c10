package yamlconfig

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/domain"
	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/ports"
)

// Loader reads ros-config.yml from the workspace root.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.ConfigLoader = (*Loader)(nil)

func (l *Loader) Load(ws domain.Workspace) (domain.PackageSet, error) {
	path := ws.ConfigPath()

	b, err := os.ReadFile(path)
	if err != nil {
		return domain.PackageSet{}, &domain.OpError{
			Op:   "yamlconfig.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(b, &yc); err != nil {
		return domain.PackageSet{}, &domain.OpError{
			Op:   "yamlconfig.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapAndValidate(path, yc)
}

type yamlConfig struct {
	// A missing key decodes to a nil slice, which is a valid empty set.
	OfficialPackages []string `yaml:"official-packages"`
}

func mapAndValidate(path string, yc yamlConfig) (domain.PackageSet, error) {
	pkgs := make([]string, 0, len(yc.OfficialPackages))
	for i, p := range yc.OfficialPackages {
		name := strings.TrimSpace(p)
		if name == "" {
			return domain.PackageSet{}, invalidField(path,
				fmt.Sprintf("official-packages[%d]", i), "package name must not be blank")
		}
		pkgs = append(pkgs, name)
	}

	return domain.PackageSet{Official: pkgs}, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlconfig.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s", field, msg),
	}
}

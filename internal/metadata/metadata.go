// Package metadata builds the package-level plist records and identifier
// files that bind a wallpaper bundle to the OS asset-provider subsystem.
//
// The field tables here are load-bearing: the consuming renderer matches key
// names and value types exactly. One asymmetry is deliberate and must not be
// "fixed": the descriptor's identifier field is numeric while the user-info
// record renders the same identifier as a string. The provider keys both
// representations separately and they are not interchangeable.
package metadata

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"howett.net/plist"

	"posterforge/internal/colors"
	"posterforge/internal/naming"
	"posterforge/internal/services"
)

// File names inside a descriptor directory.
const (
	DescriptorName               = "Wallpaper.plist"
	ProviderInfoName             = "providerInfo.plist"
	RoleIdentifierName           = "com.apple.posterkit.role.identifier"
	DescriptorIdentifierName     = "com.apple.posterkit.provider.descriptor.identifier"
	UserInfoName                 = "com.apple.posterkit.provider.contents.userInfo"
	roleLockScreen               = "PRPosterRoleLockScreen"
	descriptorContentVersion     = 2.01
	descriptorSchemaVersion      = 1
	assetTypeLayeredAnimation    = "LayeredAnimation"
	emptyEnvironmentOverridesB64 = "e30="
)

// NewUUID generates an uppercase UUID as used for package and provider
// descriptor identities.
func NewUUID() string {
	return strings.ToUpper(uuid.NewString())
}

// Descriptor is the wallpaper-level Wallpaper.plist record.
type Descriptor struct {
	AppearanceAware         int            `plist:"appearanceAware"`
	Assets                  Assets         `plist:"assets"`
	ContentVersion          float64        `plist:"contentVersion"`
	Family                  string         `plist:"family"`
	Identifier              int            `plist:"identifier"`
	LogicalScreenClass      string         `plist:"logicalScreenClass"`
	Name                    string         `plist:"name"`
	PreferredProminentColor ProminentColor `plist:"preferredProminentColor"`
	Version                 int            `plist:"version"`
}

// Assets nests the per-surface asset variants.
type Assets struct {
	LockAndHome LockAndHome `plist:"lockAndHome"`
}

// LockAndHome carries the shared lock/home variant set.
type LockAndHome struct {
	Default AssetVariant `plist:"default"`
}

// AssetVariant binds the two layer bundles to the wallpaper identity.
type AssetVariant struct {
	BackgroundAnimationFileName  string `plist:"backgroundAnimationFileName"`
	FloatingAnimationFileNameKey string `plist:"floatingAnimationFileNameKey"`
	Identifier                   int    `plist:"identifier"`
	Name                         string `plist:"name"`
	Type                         string `plist:"type"`
}

// ProminentColor holds the appearance color hex strings.
type ProminentColor struct {
	Dark    string `plist:"dark"`
	Default string `plist:"default"`
}

// ProviderInfo records the provider's last-use timestamp. It must serialize
// as an XML plist; the provider does not read the binary variant here.
type ProviderInfo struct {
	LastUseDate time.Time `plist:"kConfigurationLastUseDateKey"`
}

// UserInfo is the provider contents record. WallpaperRepresentingIdentifier
// is intentionally a string; see the package comment.
type UserInfo struct {
	PosterEnvironmentOverrides      []byte `plist:"posterEnvironmentOverrides"`
	WallpaperRepresentingFileName   string `plist:"wallpaperRepresentingFileName"`
	WallpaperRepresentingIdentifier string `plist:"wallpaperRepresentingIdentifier"`
}

// NewDescriptor assembles the Wallpaper.plist record from the derived names
// and sampled colors.
func NewDescriptor(names naming.Names, wallpaperName string, identifier int, prominent colors.Prominent) Descriptor {
	return Descriptor{
		AppearanceAware: 1,
		Assets: Assets{
			LockAndHome: LockAndHome{
				Default: AssetVariant{
					BackgroundAnimationFileName:  names.BackgroundBundle,
					FloatingAnimationFileNameKey: names.FloatingBundle,
					Identifier:                   identifier,
					Name:                         wallpaperName,
					Type:                         assetTypeLayeredAnimation,
				},
			},
		},
		ContentVersion:     descriptorContentVersion,
		Family:             wallpaperName,
		Identifier:         identifier,
		LogicalScreenClass: names.ResolutionTag,
		Name:               wallpaperName,
		PreferredProminentColor: ProminentColor{
			Dark:    prominent.Dark,
			Default: prominent.Default,
		},
		Version: descriptorSchemaVersion,
	}
}

// NewUserInfo assembles the provider contents record. The environment
// overrides blob is the fixed pre-encoded empty dictionary.
func NewUserInfo(names naming.Names, identifier int) UserInfo {
	return UserInfo{
		PosterEnvironmentOverrides:      []byte(emptyEnvironmentOverridesB64),
		WallpaperRepresentingFileName:   names.WallpaperFolder,
		WallpaperRepresentingIdentifier: strconv.Itoa(identifier),
	}
}

// WriteDescriptor writes Wallpaper.plist into the wallpaper bundle directory.
func WriteDescriptor(bundleDir string, d Descriptor) error {
	return writePlist(filepath.Join(bundleDir, DescriptorName), d)
}

// WriteProviderFiles writes the provider-side records into the descriptor
// root: providerInfo.plist, the role and descriptor identifier files, and the
// user-info record.
func WriteProviderFiles(descriptorDir, providerDescriptorUUID string, info UserInfo, now time.Time) error {
	if err := writePlist(filepath.Join(descriptorDir, ProviderInfoName), ProviderInfo{LastUseDate: now}); err != nil {
		return err
	}
	if err := writeText(filepath.Join(descriptorDir, RoleIdentifierName), roleLockScreen); err != nil {
		return err
	}
	if err := writeText(filepath.Join(descriptorDir, DescriptorIdentifierName), providerDescriptorUUID); err != nil {
		return err
	}
	return writePlist(filepath.Join(descriptorDir, UserInfoName), info)
}

func writePlist(path string, record any) error {
	data, err := plist.MarshalIndent(record, plist.XMLFormat, "\t")
	if err != nil {
		return services.Wrap(services.ErrSerialization, "metadata", "marshal "+filepath.Base(path), "Failed to serialize plist record", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return services.Wrap(services.ErrSerialization, "metadata", "write "+filepath.Base(path), "Failed to write plist record", err)
	}
	return nil
}

func writeText(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return services.Wrap(services.ErrSerialization, "metadata", fmt.Sprintf("write %s", filepath.Base(path)), "Failed to write identifier file", err)
	}
	return nil
}

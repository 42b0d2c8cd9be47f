package nixgen

import (
	"fmt"
	"strings"

	"github.com/kvernberg/nixwright/internal/selection"
)

// stateVersion pins the NixOS release the generated configuration targets.
const stateVersion = "25.05"

// kernelPackage maps the friendly kernel choice to its Nix package set.
func kernelPackage(kernel string) string {
	switch kernel {
	case "linux-lts":
		return "pkgs.linuxPackages"
	case "linux-zen":
		return "pkgs.linuxPackages_zen"
	case "linux-hardened":
		return "pkgs.linuxPackages_hardened"
	default:
		return "pkgs.linuxPackages_latest"
	}
}

// shellPackage maps a shell choice to its Nix package reference, or "" for
// the system default shell.
func shellPackage(shell string) string {
	switch shell {
	case "zsh":
		return "pkgs.zsh"
	case "fish":
		return "pkgs.fish"
	case "nushell":
		return "pkgs.nushell"
	default:
		return ""
	}
}

// validPackageName reports whether s is a plausible nixpkgs attribute path
// element. Package selections travel into the document unquoted, so anything
// outside this set is a contract violation, not an escaping problem.
func validPackageName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return false
		}
	}
	return true
}

// writeBootloader emits the boot.loader section for the chosen bootloader.
// Requirement checking has already constrained the choice to the fixed set.
func writeBootloader(w *writer, st *selection.State) {
	switch st.Bootloader {
	case selection.BootloaderSystemdBoot:
		w.open("boot.loader")
		w.attrBool("systemd-boot.enable", true)
		w.attrBool("efi.canTouchEfiVariables", true)
		w.close()
	case selection.BootloaderGrub:
		w.open("boot.loader")
		w.open("grub")
		w.attrBool("enable", true)
		w.attrStr("bootloader", "device", "nodev")
		w.attrBool("efiSupport", true)
		w.close()
		w.attrBool("efi.canTouchEfiVariables", true)
		w.close()
	case selection.BootloaderGrubLegacy:
		device := ""
		if len(st.Drives) > 0 {
			device = st.Drives[0].Device
		}
		w.open("boot.loader.grub")
		w.attrBool("enable", true)
		w.attrStr("bootloader", "device", device)
		w.close()
	}
}

// writeNetworking emits the hostname and the nested shape for the chosen
// network backend.
func writeNetworking(w *writer, st *selection.State) {
	w.attrStr("hostname", "networking.hostName", st.Hostname)
	switch st.NetworkBackend {
	case selection.NetworkNetworkManager:
		w.attrBool("networking.networkmanager.enable", true)
	case selection.NetworkDHCPCD:
		w.attrBool("networking.useDHCP", true)
		w.attrBool("networking.dhcpcd.enable", true)
	case selection.NetworkSystemdNetwork:
		w.attrBool("networking.useNetworkd", true)
		w.attrBool("systemd.network.enable", true)
	}
}

// writeLocale emits the locale, console keymap and X keyboard layout
// attribute pair the target format expects for the single locale selection.
func writeLocale(w *writer, st *selection.State) {
	w.attrStr("locale", "i18n.defaultLocale", st.Locale)
	if st.Language != "" && st.Language != st.Locale {
		w.attrStrList("language", "i18n.supportedLocales", []string{
			st.Locale + "/UTF-8",
			st.Language + "/UTF-8",
		})
	}
	w.attrStr("timezone", "time.timeZone", st.Timezone)
	w.attrStr("keyboard_layout", "console.keyMap", st.KeyboardLayout)
	w.attrStr("keyboard_layout", "services.xserver.xkb.layout", st.KeyboardLayout)
}

// writeDesktop emits the desktop environment and greeter sections.
func writeDesktop(w *writer, st *selection.State) {
	switch st.Desktop {
	case "gnome":
		w.attrBool("services.xserver.enable", true)
		w.attrBool("services.xserver.desktopManager.gnome.enable", true)
	case "plasma":
		w.attrBool("services.desktopManager.plasma6.enable", true)
	case "xfce":
		w.attrBool("services.xserver.enable", true)
		w.attrBool("services.xserver.desktopManager.xfce.enable", true)
	case "cinnamon":
		w.attrBool("services.xserver.enable", true)
		w.attrBool("services.xserver.desktopManager.cinnamon.enable", true)
	case "hyprland":
		w.attrBool("programs.hyprland.enable", true)
	}

	switch st.Greeter {
	case "gdm":
		w.attrBool("services.xserver.displayManager.gdm.enable", true)
	case "sddm":
		w.attrBool("services.displayManager.sddm.enable", true)
	case "lightdm":
		w.attrBool("services.xserver.displayManager.lightdm.enable", true)
	}
}

// writeAudio emits the audio backend section.
func writeAudio(w *writer, st *selection.State) {
	switch st.AudioBackend {
	case selection.AudioPipewire:
		w.attrBool("security.rtkit.enable", true)
		w.open("services.pipewire")
		w.attrBool("enable", true)
		w.attrBool("alsa.enable", true)
		w.attrBool("pulse.enable", true)
		w.close()
	case selection.AudioPulseaudio:
		w.attrBool("hardware.pulseaudio.enable", true)
	}
}

// writeUsers emits users.users.root plus one block per selected user, in
// selection order.
func writeUsers(w *writer, st *selection.State) {
	w.open("users.users.root")
	w.attrStr("root_password_hash", "hashedPassword", st.RootPasswordHash)
	w.close()

	for i, u := range st.Users {
		field := fmt.Sprintf("users[%d]", i)
		name, err := AttrName(field+".name", u.Name)
		if err != nil {
			if w.err == nil {
				w.err = err
			}
			return
		}
		w.open("users.users." + name)
		w.attrBool("isNormalUser", true)
		w.attrStrList(field+".groups", "extraGroups", u.EffectiveGroups())
		w.attrStr(field+".password_hash", "hashedPassword", u.PasswordHash)
		if pkg := shellPackage(u.Shell); pkg != "" {
			w.attrRaw("shell", pkg)
		}
		w.close()
	}

	// Shell programs need their NixOS module enabled to own /etc files.
	enabled := map[string]bool{}
	for _, u := range st.Users {
		if (u.Shell == "zsh" || u.Shell == "fish") && !enabled[u.Shell] {
			enabled[u.Shell] = true
			w.attrBool("programs."+u.Shell+".enable", true)
		}
	}
}

// writePackages emits environment.systemPackages preserving selection order.
func writePackages(w *writer, st *selection.State) {
	if len(st.SystemPackages) == 0 {
		return
	}
	for i, p := range st.SystemPackages {
		if !validPackageName(p) {
			if w.err == nil {
				w.err = &SynthesisError{
					Field:  fmt.Sprintf("system_pkgs[%d]", i),
					Reason: fmt.Sprintf("%q is not a valid package attribute name", p),
				}
			}
			return
		}
	}
	w.attrRaw("environment.systemPackages",
		"with pkgs; [ "+strings.Join(st.SystemPackages, " ")+" ]")
}

// writeProfile emits the handful of profile-specific toggles.
func writeProfile(w *writer, st *selection.State) {
	switch st.Profile {
	case "server":
		w.attrBool("services.openssh.enable", true)
	case "minimal":
		w.attrBool("documentation.enable", false)
	}
}

// SystemDocument renders the complete configuration.nix text for the given
// state. Callers normally go through Synthesize, which also handles the
// flake passthrough.
func SystemDocument(st *selection.State) (string, error) {
	w := &writer{}

	w.line("# Generated by nixwright.")
	w.line("{ config, pkgs, ... }:")
	w.blank()
	w.line("{")
	w.indent++

	w.attrRaw("imports", "[ ./hardware-configuration.nix ]")
	w.blank()

	writeBootloader(w, st)
	w.attrRaw("boot.kernelPackages", kernelPackage(st.Kernel))
	w.blank()

	writeNetworking(w, st)
	w.blank()

	writeLocale(w, st)
	w.blank()

	writeDesktop(w, st)
	writeAudio(w, st)
	w.blank()

	writeUsers(w, st)
	w.blank()

	writePackages(w, st)
	writeProfile(w, st)
	if st.SwapEnabled {
		w.attrBool("zramSwap.enable", true)
	}
	if st.FlakesEnabled {
		w.attrStrList("flakes", "nix.settings.experimental-features",
			[]string{"nix-command", "flakes"})
	}
	w.blank()

	w.attrStr("state_version", "system.stateVersion", stateVersion)

	w.indent--
	w.line("}")

	if w.err != nil {
		return "", w.err
	}
	return w.String(), nil
}

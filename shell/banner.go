package shell

const bannerText = `
================================================================

     _   _  _____ __   __ _   _  ____
    | \ | ||___ / \ \ / /| | | |/ ___|
    |  \| |  |_ \  \ V / | | | |\___ \
    | |\  | ___) | / . \ | |_| | ___) |
    |_| \_||____/ /_/ \_\ \___/ |____/

              Terminal Interface v1.0

================================================================

  [*] System initialized...
  [*] Virtual File System ready
  [*] Command processor online
  [*] Connection established

  Type 'help' for available commands or 'exit' to quit.

`

const escapeNotice = "\n  [*] ESC pressed - Exiting terminal...\n"

const farewellText = `
  [*] Terminating connection...
  [*] N3XUS-OS session ended
  Goodbye!

`

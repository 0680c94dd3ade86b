package menu

// Shopify menus nest at most three levels deep.
const getMenuQuery = `
query getMenu($handle: String!) {
  menu(handle: $handle) {
    items {
      title
      url
      items {
        title
        url
        items {
          title
          url
        }
      }
    }
  }
}
`

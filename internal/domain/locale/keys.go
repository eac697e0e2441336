package locale

// Key identifies a translatable string. The set of keys is closed; every
// supported language defines all of them.
type Key string

const (
	// Header
	KeyHeaderStoreName         Key = "header.store_name"
	KeyHeaderTagline           Key = "header.tagline"
	KeyHeaderSearchPlaceholder Key = "header.search_placeholder"
	KeyHeaderProducts          Key = "header.products"
	KeyHeaderCategories        Key = "header.categories"
	KeyHeaderAbout             Key = "header.about"
	KeyHeaderContact           Key = "header.contact"
	KeyHeaderFreePickup        Key = "header.free_pickup"
	KeyHeaderCall              Key = "header.call"

	// Home
	KeyHomeWelcome          Key = "home.welcome"
	KeyHomeHeroDescription  Key = "home.hero_description"
	KeyHomeShopNow          Key = "home.shop_now"
	KeyHomeBrowseCategories Key = "home.browse_categories"
	KeyHomeRating           Key = "home.rating"
	KeyHomeTrustedStore     Key = "home.trusted_store"
	KeyHomeFreePickup       Key = "home.free_pickup"

	// Features
	KeyFeaturesWhatsappTitle Key = "features.whatsapp_title"
	KeyFeaturesWhatsappDesc  Key = "features.whatsapp_desc"
	KeyFeaturesPickupTitle   Key = "features.pickup_title"
	KeyFeaturesPickupDesc    Key = "features.pickup_desc"
	KeyFeaturesLocalTitle    Key = "features.local_title"
	KeyFeaturesLocalDesc     Key = "features.local_desc"

	// Products
	KeyProductsFeatured          Key = "products.featured"
	KeyProductsFeaturedDesc      Key = "products.featured_desc"
	KeyProductsViewAll           Key = "products.view_all"
	KeyProductsShopByCategory    Key = "products.shop_by_category"
	KeyProductsCategoryDesc      Key = "products.category_desc"
	KeyProductsAllProducts       Key = "products.all_products"
	KeyProductsProducts          Key = "products.products"
	KeyProductsAvailable         Key = "products.available"
	KeyProductsSearchPlaceholder Key = "products.search_placeholder"
	KeyProductsCategory          Key = "products.category"
	KeyProductsAllCategories     Key = "products.all_categories"
	KeyProductsNewest            Key = "products.newest"
	KeyProductsNameAz            Key = "products.name_az"
	KeyProductsPriceLowHigh      Key = "products.price_low_high"
	KeyProductsPriceHighLow      Key = "products.price_high_low"
	KeyProductsClearFilter       Key = "products.clear_filter"
	KeyProductsNoProducts        Key = "products.no_products"
	KeyProductsClearFilters      Key = "products.clear_filters"
	KeyProductsAddToCart         Key = "products.add_to_cart"
	KeyProductsOutOfStock        Key = "products.out_of_stock"
	KeyProductsLowStock          Key = "products.low_stock"
	KeyProductsOff               Key = "products.off"

	// Category
	KeyCategoryBackToCategories    Key = "category.back_to_categories"
	KeyCategoryFilterBySubcategory Key = "category.filter_by_subcategory"
	KeyCategoryAll                 Key = "category.all"
	KeyCategoryNoProductsFound     Key = "category.no_products_found"
	KeyCategoryNoProductsDesc      Key = "category.no_products_desc"
	KeyCategoryNoProductsSubDesc   Key = "category.no_products_sub_desc"
	KeyCategoryShowAllProducts     Key = "category.show_all_products"
	KeyCategoryBrowseAllProducts   Key = "category.browse_all_products"

	// Cart
	KeyCartMyCart        Key = "cart.my_cart"
	KeyCartItems         Key = "cart.items"
	KeyCartEmptyTitle    Key = "cart.empty_title"
	KeyCartEmptyDesc     Key = "cart.empty_desc"
	KeyCartStartShopping Key = "cart.start_shopping"
	KeyCartTotal         Key = "cart.total"
	KeyCartOrderSummary  Key = "cart.order_summary"
	KeyCartDelivery      Key = "cart.delivery"
	KeyCartFree          Key = "cart.free"
	KeyCartPlaceOrder    Key = "cart.place_order"
	KeyCartPickupInfo    Key = "cart.pickup_info"
	KeyCartPickupDesc    Key = "cart.pickup_desc"
	KeyCartCashPickup    Key = "cart.cash_pickup"
	KeyCartCashDesc      Key = "cart.cash_desc"

	// Customer Info
	KeyCustomerInfo               Key = "customer.info"
	KeyCustomerFullName           Key = "customer.full_name"
	KeyCustomerPhone              Key = "customer.phone"
	KeyCustomerAddress            Key = "customer.address"
	KeyCustomerNamePlaceholder    Key = "customer.name_placeholder"
	KeyCustomerPhonePlaceholder   Key = "customer.phone_placeholder"
	KeyCustomerAddressPlaceholder Key = "customer.address_placeholder"
	KeyCustomerSendOrder          Key = "customer.send_order"

	// Store Info
	KeyStoreVisitTitle    Key = "store.visit_title"
	KeyStoreVisitDesc     Key = "store.visit_desc"
	KeyStoreLocation      Key = "store.location"
	KeyStoreLocationDesc  Key = "store.location_desc"
	KeyStoreHours         Key = "store.hours"
	KeyStoreHoursDesc     Key = "store.hours_desc"
	KeyStoreAddress       Key = "store.address"
	KeyStoreMonSat        Key = "store.mon_sat"
	KeyStoreSun           Key = "store.sun"
	KeyStoreGetDirections Key = "store.get_directions"

	// Common
	KeyCommonBack    Key = "common.back"
	KeyCommonAdd     Key = "common.add"
	KeyCommonLoading Key = "common.loading"
	KeyCommonError   Key = "common.error"
	KeyCommonSuccess Key = "common.success"
	KeyCommonCancel  Key = "common.cancel"
	KeyCommonSave    Key = "common.save"
	KeyCommonEdit    Key = "common.edit"
	KeyCommonDelete  Key = "common.delete"
	KeyCommonClose   Key = "common.close"

	// Toast Messages
	KeyToastAddedToCart     Key = "toast.added_to_cart"
	KeyToastProductAdded    Key = "toast.product_added"
	KeyToastOutOfStockTitle Key = "toast.out_of_stock_title"
	KeyToastOutOfStockDesc  Key = "toast.out_of_stock_desc"
	KeyToastOrderSent       Key = "toast.order_sent"
	KeyToastOrderSentDesc   Key = "toast.order_sent_desc"

	// About
	KeyAboutTitle            Key = "about.title"
	KeyAboutSubtitle         Key = "about.subtitle"
	KeyAboutOurStory         Key = "about.our_story"
	KeyAboutStoryP1          Key = "about.story_p1"
	KeyAboutStoryP2          Key = "about.story_p2"
	KeyAboutStoryP3          Key = "about.story_p3"
	KeyAboutOurValues        Key = "about.our_values"
	KeyAboutCommunityFirst   Key = "about.community_first"
	KeyAboutCommunityDesc    Key = "about.community_desc"
	KeyAboutQualityAssurance Key = "about.quality_assurance"
	KeyAboutQualityDesc      Key = "about.quality_desc"
	KeyAboutCustomerCare     Key = "about.customer_care"
	KeyAboutCustomerDesc     Key = "about.customer_desc"

	// Contact
	KeyContactTitle              Key = "contact.title"
	KeyContactSubtitle           Key = "contact.subtitle"
	KeyContactStoreInfo          Key = "contact.store_info"
	KeyContactQuickActions       Key = "contact.quick_actions"
	KeyContactCallNow            Key = "contact.call_now"
	KeyContactWhatsappUs         Key = "contact.whatsapp_us"
	KeyContactSendEmail          Key = "contact.send_email"
	KeyContactSendMessage        Key = "contact.send_message"
	KeyContactMessage            Key = "contact.message"
	KeyContactMessagePlaceholder Key = "contact.message_placeholder"
	KeyContactSendViaWhatsapp    Key = "contact.send_via_whatsapp"
	KeyContactFindUs             Key = "contact.find_us"
	KeyContactMapIntegration     Key = "contact.map_integration"

	// Order
	KeyOrderClosing Key = "order.closing"
)

// Keys lists every Key in declaration order.
var Keys = []Key{
	KeyHeaderStoreName,
	KeyHeaderTagline,
	KeyHeaderSearchPlaceholder,
	KeyHeaderProducts,
	KeyHeaderCategories,
	KeyHeaderAbout,
	KeyHeaderContact,
	KeyHeaderFreePickup,
	KeyHeaderCall,
	KeyHomeWelcome,
	KeyHomeHeroDescription,
	KeyHomeShopNow,
	KeyHomeBrowseCategories,
	KeyHomeRating,
	KeyHomeTrustedStore,
	KeyHomeFreePickup,
	KeyFeaturesWhatsappTitle,
	KeyFeaturesWhatsappDesc,
	KeyFeaturesPickupTitle,
	KeyFeaturesPickupDesc,
	KeyFeaturesLocalTitle,
	KeyFeaturesLocalDesc,
	KeyProductsFeatured,
	KeyProductsFeaturedDesc,
	KeyProductsViewAll,
	KeyProductsShopByCategory,
	KeyProductsCategoryDesc,
	KeyProductsAllProducts,
	KeyProductsProducts,
	KeyProductsAvailable,
	KeyProductsSearchPlaceholder,
	KeyProductsCategory,
	KeyProductsAllCategories,
	KeyProductsNewest,
	KeyProductsNameAz,
	KeyProductsPriceLowHigh,
	KeyProductsPriceHighLow,
	KeyProductsClearFilter,
	KeyProductsNoProducts,
	KeyProductsClearFilters,
	KeyProductsAddToCart,
	KeyProductsOutOfStock,
	KeyProductsLowStock,
	KeyProductsOff,
	KeyCategoryBackToCategories,
	KeyCategoryFilterBySubcategory,
	KeyCategoryAll,
	KeyCategoryNoProductsFound,
	KeyCategoryNoProductsDesc,
	KeyCategoryNoProductsSubDesc,
	KeyCategoryShowAllProducts,
	KeyCategoryBrowseAllProducts,
	KeyCartMyCart,
	KeyCartItems,
	KeyCartEmptyTitle,
	KeyCartEmptyDesc,
	KeyCartStartShopping,
	KeyCartTotal,
	KeyCartOrderSummary,
	KeyCartDelivery,
	KeyCartFree,
	KeyCartPlaceOrder,
	KeyCartPickupInfo,
	KeyCartPickupDesc,
	KeyCartCashPickup,
	KeyCartCashDesc,
	KeyCustomerInfo,
	KeyCustomerFullName,
	KeyCustomerPhone,
	KeyCustomerAddress,
	KeyCustomerNamePlaceholder,
	KeyCustomerPhonePlaceholder,
	KeyCustomerAddressPlaceholder,
	KeyCustomerSendOrder,
	KeyStoreVisitTitle,
	KeyStoreVisitDesc,
	KeyStoreLocation,
	KeyStoreLocationDesc,
	KeyStoreHours,
	KeyStoreHoursDesc,
	KeyStoreAddress,
	KeyStoreMonSat,
	KeyStoreSun,
	KeyStoreGetDirections,
	KeyCommonBack,
	KeyCommonAdd,
	KeyCommonLoading,
	KeyCommonError,
	KeyCommonSuccess,
	KeyCommonCancel,
	KeyCommonSave,
	KeyCommonEdit,
	KeyCommonDelete,
	KeyCommonClose,
	KeyToastAddedToCart,
	KeyToastProductAdded,
	KeyToastOutOfStockTitle,
	KeyToastOutOfStockDesc,
	KeyToastOrderSent,
	KeyToastOrderSentDesc,
	KeyAboutTitle,
	KeyAboutSubtitle,
	KeyAboutOurStory,
	KeyAboutStoryP1,
	KeyAboutStoryP2,
	KeyAboutStoryP3,
	KeyAboutOurValues,
	KeyAboutCommunityFirst,
	KeyAboutCommunityDesc,
	KeyAboutQualityAssurance,
	KeyAboutQualityDesc,
	KeyAboutCustomerCare,
	KeyAboutCustomerDesc,
	KeyContactTitle,
	KeyContactSubtitle,
	KeyContactStoreInfo,
	KeyContactQuickActions,
	KeyContactCallNow,
	KeyContactWhatsappUs,
	KeyContactSendEmail,
	KeyContactSendMessage,
	KeyContactMessage,
	KeyContactMessagePlaceholder,
	KeyContactSendViaWhatsapp,
	KeyContactFindUs,
	KeyContactMapIntegration,
	KeyOrderClosing,
}
